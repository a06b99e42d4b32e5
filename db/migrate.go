package db

import (
	"gorm.io/gorm"

	"github.com/meinhoongagan/pharmacy-portal/logger"
	"github.com/meinhoongagan/pharmacy-portal/models"
)

// Migrate creates the tables this service owns: sessions and meeting
// attendance. Appointment data lives in the backend.
func Migrate(db *gorm.DB) error {
	logger.SLog.Info("Migrating sessions and meeting_attendances tables...")
	err := db.AutoMigrate(
		&models.Session{},
		&models.MeetingAttendance{},
	)
	if err != nil {
		return err
	}

	logger.SLog.Infof("Migrations applied (%d tables)", 2)
	return nil
}
