package database

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavshah/duty-planner-go/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and migration behaviour
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SkipMigrate     bool
}

// Models lists every table owned by the planner, in migration order
func Models() []interface{} {
	return []interface{}{
		&models.Person{},
		&models.Unavailability{},
		&models.Assignment{},
		&models.GenerationLog{},
	}
}

// InitDB opens Postgres when dsn is set and SQLite at dataPath otherwise,
// then migrates the schema
func InitDB(dsn, dataPath string, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	}

	var db *gorm.DB
	var err error
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if opts.MaxOpenConns == 0 {
			opts.MaxOpenConns = 20
		}
		if opts.MaxIdleConns == 0 {
			opts.MaxIdleConns = 10
		}
		if opts.ConnMaxLifetime == 0 {
			opts.ConnMaxLifetime = 30 * time.Minute
		}
	} else {
		if dataPath == "" {
			dataPath = "dutyplanner.db"
		}
		db, err = gorm.Open(sqlite.Open(dataPath), cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// SQLite allows a single writer; one connection keeps
		// transactions from tripping over SQLITE_BUSY.
		opts.MaxOpenConns = 1
		opts.MaxIdleConns = 1
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		if opts.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		}
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// Ping checks that the underlying connection is alive
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
