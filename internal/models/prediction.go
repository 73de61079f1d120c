package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Prediction is one AI-generated forecast snapshot. Immutable once
// created; "latest" is the most recent CreatedAt.
type Prediction struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	StartupID string `gorm:"type:uuid;not null;index" json:"startup_id"`

	// InputData snapshots the metrics and profile the forecast was
	// generated from; OutputData carries model reasoning and provenance.
	InputData  datatypes.JSON `gorm:"type:jsonb;not null" json:"input_data"`
	OutputData datatypes.JSON `gorm:"type:jsonb;not null" json:"output_data"`

	ProfitLoss         decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"profit_loss"`
	GrowthRate         float64         `gorm:"not null" json:"growth_rate"`
	FailureProbability float64         `gorm:"not null" json:"failure_probability"`
	Cashflow           decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"cashflow"`
	RunwayMonths       int             `gorm:"not null" json:"runway_months"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}

func (p *Prediction) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
