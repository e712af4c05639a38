// db/db.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/dev-mohitbeniwal/navguard/config"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
)

var Postgres *gorm.DB

func InitPostgres() error {
	dsn := config.GetString("database.dsn")
	if dsn == "" {
		return fmt.Errorf("database.dsn is not set")
	}
	logger.Info("Connecting to Postgres")

	var err error
	Postgres, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	sqlDB, err := Postgres.DB()
	if err != nil {
		return fmt.Errorf("failed to access Postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.GetInt("database.maxOpenConns"))
	sqlDB.SetMaxIdleConns(config.GetInt("database.maxIdleConns"))
	sqlDB.SetConnMaxLifetime(config.GetDuration("database.connMaxLifetime"))

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping Postgres: %w", err)
	}

	logger.Info("Successfully connected to Postgres",
		zap.Int("maxOpenConns", config.GetInt("database.maxOpenConns")),
		zap.Duration("connMaxLifetime", config.GetDuration("database.connMaxLifetime")))
	return nil
}

func ClosePostgres() {
	if Postgres == nil {
		return
	}
	sqlDB, err := Postgres.DB()
	if err != nil {
		logger.Error("Error accessing Postgres pool", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection", zap.Error(err))
	} else {
		logger.Info("Postgres connection closed successfully")
	}
}

// pingTimeout bounds connectivity checks at startup.
const pingTimeout = 5 * time.Second
