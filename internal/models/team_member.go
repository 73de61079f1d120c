package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember rows are insertion-ordered per startup.
type TeamMember struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	StartupID string `gorm:"type:uuid;not null;index" json:"startup_id"`

	Name  string  `gorm:"type:varchar(200);not null" json:"name"`
	Email *string `gorm:"type:varchar(320)" json:"email"`
	Role  *string `gorm:"type:varchar(100)" json:"role"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
}

func (TeamMember) TableName() string {
	return "startup_team_members"
}

func (t *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
