package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Playbook stores generated growth playbooks. Persistence is
// best-effort: the generation response does not depend on it.
type Playbook struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	StartupID string `gorm:"type:uuid;not null;index" json:"startup_id"`

	Stage   string `gorm:"type:varchar(30);not null" json:"stage"`
	Sector  string `gorm:"type:varchar(30);not null" json:"sector"`
	Content string `gorm:"type:text;not null" json:"content"`
	Version int    `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
}

func (Playbook) TableName() string {
	return "playbooks"
}

func (p *Playbook) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
