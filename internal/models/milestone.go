package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Milestone is a one-time binary checkpoint on a goal, independent of the
// weekly action counters.
type Milestone struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID      uuid.UUID  `json:"goalId" gorm:"type:uuid;index;not null"`
	Position    int        `json:"position" gorm:"not null"`
	Title       string     `json:"title" gorm:"not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Milestone DTOs
type UpdateMilestoneRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
