package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action is a weekly countable unit of effort toward a goal. Current is
// tracked against Target within a single week and zeroed on rollover.
type Action struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID `json:"goalId" gorm:"type:uuid;index;not null"`
	Position  int       `json:"position" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Current   int       `json:"current" gorm:"not null;default:0"`
	Target    int       `json:"target" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Action) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
