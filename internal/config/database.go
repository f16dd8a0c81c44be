package config

import (
	"log"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate creates or updates the schema, including the unique (user, date)
// and (user, achievement) indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.SleepRecord{}, &domain.Achievement{})
}
