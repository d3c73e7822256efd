package database

import (
	"fmt"

	"hashlab/internal/config"
	"hashlab/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres database used by the postgres storage driver
// and migrates the artifacts table.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Artifact{}); err != nil {
		return nil, fmt.Errorf("auto-migrate database: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"host": cfg.DBHost,
		"name": cfg.DBName,
	}).Info("Database connection established and migrated")
	return db, nil
}
