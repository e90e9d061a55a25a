// Package app wires configuration, storage, services and the router
// together for the server, the serverless entry and the CLI.
package app

import (
	"context"
	"fmt"

	"github.com/arnavshah/duty-planner-go/internal/config"
	"github.com/arnavshah/duty-planner-go/internal/logger"
	"github.com/arnavshah/duty-planner-go/pkg/autogen"
	"github.com/arnavshah/duty-planner-go/pkg/database"
	"github.com/arnavshah/duty-planner-go/pkg/handlers"
	"github.com/arnavshah/duty-planner-go/pkg/metrics"
	"github.com/arnavshah/duty-planner-go/pkg/repository"
	"github.com/arnavshah/duty-planner-go/pkg/scheduler"
	"github.com/arnavshah/duty-planner-go/pkg/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Version is reported by the index route
const Version = "1.0.0"

// App holds the wired components
type App struct {
	Config    *config.Config
	DB        *gorm.DB
	Registry  *prometheus.Registry
	Scheduler *scheduler.Scheduler

	Personnel      *service.PersonnelService
	Unavailability *service.UnavailabilityService
	Schedule       *service.ScheduleService

	log *logger.Logger
}

// New opens the database and builds every service
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.New()
	}

	opts := &database.Options{}
	if cfg.IsDevelopment() {
		opts.LogLevel = gormlogger.Warn
	}
	db, err := database.InitDB(cfg.DatabaseURL, cfg.DataPath, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return NewWithDB(cfg, db, log), nil
}

// NewWithDB builds every service over an already opened database
func NewWithDB(cfg *config.Config, db *gorm.DB, log *logger.Logger) *App {
	if log == nil {
		log = logger.New()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := repository.NewGormStore(db)
	personRepo := repository.NewPersonRepository(db)
	unavailabilityRepo := repository.NewUnavailabilityRepository(db)
	validate := service.NewValidator()

	sched := scheduler.NewScheduler(store, cfg.Slots,
		scheduler.WithMetrics(metrics.NewPrometheus(reg, cfg.MetricsNamespace)),
		scheduler.WithLogger(log.WithField("component", "scheduler")),
	)

	return &App{
		Config:         cfg,
		DB:             db,
		Registry:       reg,
		Scheduler:      sched,
		Personnel:      service.NewPersonnelService(personRepo, validate),
		Unavailability: service.NewUnavailabilityService(unavailabilityRepo, personRepo, validate, nil),
		Schedule:       service.NewScheduleService(sched, store, personRepo, nil),
		log:            log,
	}
}

// Router builds the HTTP router
func (a *App) Router() *gin.Engine {
	return handlers.NewRouter(&handlers.Handler{
		Personnel:      a.Personnel,
		Unavailability: a.Unavailability,
		Schedule:       a.Schedule,
	}, handlers.RouterOptions{
		Logger:   a.log.WithField("component", "http"),
		Gatherer: a.Registry,
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, a.DB)
		},
		Version: Version,
	})
}

// AutoGenerator returns the configured cron job, or nil when disabled
func (a *App) AutoGenerator() (*autogen.Job, error) {
	if a.Config.AutoGenerateCron == "" {
		return nil, nil
	}
	return autogen.New(a.Config.AutoGenerateCron, a.Scheduler, a.Config.AutoGenerateDaysAhead,
		autogen.WithLogger(a.log.WithField("component", "autogen")),
	)
}

// Close releases the database connection
func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
