package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeekReview records the aggregate outcome of one completed weekly review.
type WeekReview struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	WeekNumber  int        `json:"weekNumber" gorm:"not null"`
	WeekStart   time.Time  `json:"weekStart"`
	Score       int        `json:"score" gorm:"not null"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (w *WeekReview) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
