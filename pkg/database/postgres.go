package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"go-fuelstation/internal/model"
	"go-fuelstation/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statements for pgbouncer transaction mode
	}), &gorm.Config{
		Logger:         newLogger,
		PrepareStmt:    false,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Migrate creates or updates the four station tables. Order matters for the
// foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.FuelType{},
		&model.Pump{},
		&model.Transaction{},
		&model.Credential{},
	)
}
