package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sector and stage values mirror the enum columns in Postgres.
var (
	Sectors = []string{"saas", "fintech", "healthtech", "edtech", "ecommerce", "marketplace", "ai_ml", "biotech", "other"}
	Stages  = []string{"idea", "prototype", "mvp", "early_stage", "growth", "mature"}
)

func ValidSector(v string) bool { return contains(Sectors, v) }
func ValidStage(v string) bool  { return contains(Stages, v) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Startup is the tenant entity. Rows are only visible to their owner;
// every repository query is scoped by OwnerID.
type Startup struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(200);not null" json:"name"`
	Sector string `gorm:"type:varchar(30);not null;index" json:"sector"`
	Stage  string `gorm:"type:varchar(30);not null;index" json:"stage"`

	// TeamExperience is in years.
	TeamExperience int     `gorm:"not null;default:0" json:"team_experience"`
	Description    *string `gorm:"type:text" json:"description,omitempty"`

	OwnerID string `gorm:"type:uuid;not null;index" json:"owner_id"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Startup) TableName() string {
	return "startups"
}

func (s *Startup) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
