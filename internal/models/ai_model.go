package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AIModel tracks trained forecast model artifacts per startup. Schema
// only: the prediction flow currently delegates to the upstream API.
type AIModel struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	StartupID *string `gorm:"type:uuid;index" json:"startup_id"`

	// Kind is one of profit, growth, failure.
	Kind      string   `gorm:"type:varchar(20);not null" json:"kind"`
	Version   int      `gorm:"not null;default:1" json:"version"`
	Accuracy  *float64 `json:"accuracy"`
	ModelPath *string  `gorm:"type:varchar(1024)" json:"model_path"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (AIModel) TableName() string {
	return "models"
}

func (m *AIModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
