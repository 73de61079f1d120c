package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Opportunity is a funding or partnership lead attached to a startup.
// Schema is persisted for the dashboard; nothing in the core flows
// writes it yet.
type Opportunity struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	StartupID string `gorm:"type:uuid;not null;index" json:"startup_id"`

	// Type is one of investor, grant, partner.
	Type        string   `gorm:"type:varchar(30);not null" json:"type"`
	Title       string   `gorm:"type:varchar(300);not null" json:"title"`
	Description *string  `gorm:"type:text" json:"description"`
	URL         *string  `gorm:"type:varchar(2048)" json:"url"`
	Score       *float64 `json:"score"`
	IsArchived  bool     `gorm:"not null;default:false" json:"is_archived"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}

func (o *Opportunity) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
