package db

import (
	"foundersight/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Startup{},
		&models.Metric{},
		&models.Prediction{},
		&models.TeamMember{},
		&models.Alert{},
		&models.Opportunity{},
		&models.AIModel{},
		&models.Playbook{},
	)
}
