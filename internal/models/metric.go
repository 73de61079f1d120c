package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Metric is one time-period financial snapshot for a startup. Rows are
// insert-only: never updated or deleted in-app.
type Metric struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	StartupID string `gorm:"type:uuid;not null;index" json:"startup_id"`

	// Money columns as numeric to avoid float errors.
	Revenue  decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"revenue"`
	Expenses decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"expenses"`
	BurnRate decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"burn_rate"`

	// Runway in months.
	Runway int `gorm:"not null" json:"runway"`

	PeriodStart time.Time `gorm:"type:date;not null;index" json:"period_start"`
	PeriodEnd   time.Time `gorm:"type:date;not null" json:"period_end"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (Metric) TableName() string {
	return "metrics"
}

func (m *Metric) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
