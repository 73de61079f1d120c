package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AlertTypeDeathZone   = "death_zone"
	AlertTypeCashflowLow = "cashflow_low"
	AlertTypeRunwayLow   = "runway_low"
)

const (
	AlertSeverityLow      = "low"
	AlertSeverityMedium   = "medium"
	AlertSeverityHigh     = "high"
	AlertSeverityCritical = "critical"
)

// Alert is a per-startup notification produced by the background sweep.
type Alert struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	StartupID string `gorm:"type:uuid;not null;index" json:"startup_id"`

	Type     string `gorm:"type:varchar(30);not null;index" json:"type"`
	Severity string `gorm:"type:varchar(20);not null" json:"severity"`
	Message  string `gorm:"type:text;not null" json:"message"`
	IsRead   bool   `gorm:"not null;default:false" json:"is_read"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
}

func (Alert) TableName() string {
	return "alerts"
}

func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
