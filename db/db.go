package db

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/meinhoongagan/pharmacy-portal/logger"
)

// Init opens the database connection without running migrations.
func Init(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("database connection established")
	return db, nil
}
