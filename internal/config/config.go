package config

import (
	"fmt"

	"github.com/arnavshah/duty-planner-go/pkg/models"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration. DatabaseURL selects Postgres, otherwise
	// DataPath is opened with SQLite.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DataPath    string `mapstructure:"DATA_PATH"`

	// Auto-generation; an empty cron spec disables it
	AutoGenerateCron      string `mapstructure:"AUTO_GENERATE_CRON"`
	AutoGenerateDaysAhead int    `mapstructure:"AUTO_GENERATE_DAYS_AHEAD"`

	MetricsNamespace string `mapstructure:"METRICS_NAMESPACE"`

	Slots []models.Slot `mapstructure:"slots"`
}

// DefaultSlots is the daily slot catalog used when config.yaml defines none
func DefaultSlots() []models.Slot {
	return []models.Slot{
		{Name: "Guard 00:00-02:00", TimeRange: "00:00-02:00", RequiredRole: models.RoleGuard},
		{Name: "Guard 02:00-04:00", TimeRange: "02:00-04:00", RequiredRole: models.RoleGuard},
		{Name: "Guard 04:00-06:00", TimeRange: "04:00-06:00", RequiredRole: models.RoleGuard},
		{Name: "Barracks Day", TimeRange: "08:00-20:00", RequiredRole: models.RoleBarracks},
		{Name: "Kitchen Morning", TimeRange: "05:00-13:00", RequiredRole: models.RoleKitchen},
	}
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v)
}

// LoadFile reads configuration from the given file plus the environment
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if len(config.Slots) == 0 {
		config.Slots = DefaultSlots()
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATA_PATH", "dutyplanner.db")

	v.SetDefault("AUTO_GENERATE_CRON", "")
	v.SetDefault("AUTO_GENERATE_DAYS_AHEAD", 1)

	v.SetDefault("METRICS_NAMESPACE", "dutyplanner")
}

func validate(config *Config) error {
	if config.DatabaseURL == "" && config.DataPath == "" {
		return fmt.Errorf("either DATABASE_URL or DATA_PATH is required")
	}
	if config.AutoGenerateDaysAhead < 0 {
		return fmt.Errorf("AUTO_GENERATE_DAYS_AHEAD must not be negative")
	}
	return ValidateSlots(config.Slots)
}

// ValidateSlots checks that every slot is complete, uses a known role and
// has a unique name
func ValidateSlots(slots []models.Slot) error {
	validate := validator.New()
	seen := make(map[string]bool, len(slots))
	for i, slot := range slots {
		if err := validate.Struct(slot); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		if !slot.RequiredRole.IsValid() {
			return fmt.Errorf("slot %q: unknown role %q", slot.Name, slot.RequiredRole)
		}
		if seen[slot.Name] {
			return fmt.Errorf("duplicate slot name %q", slot.Name)
		}
		seen[slot.Name] = true
	}
	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
