package gormdb

import (
	"fmt"
	"log"
	"time"

	"vidhost/internal/config"
	"vidhost/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the metadata database. A configured DSN selects Postgres;
// otherwise a local SQLite file is used so the app can run without a
// database server (local development and tests).
func ConnectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	if cfg.DSN != "" {
		db, err := gorm.Open(postgres.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return db, nil
	}

	log.Printf("WARNING: database.dsn not set, falling back to local SQLite at %s", cfg.SQLitePath)
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite only supports a single writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the videos table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Video{})
}

// DisconnectDB closes the underlying connection pool.
func DisconnectDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
