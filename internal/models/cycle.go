package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CycleStatus is the lifecycle state of a planning cycle.
type CycleStatus string

const (
	CycleActive    CycleStatus = "active"
	CycleCompleted CycleStatus = "completed"
	CycleAbandoned CycleStatus = "abandoned"
)

type Cycle struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string      `json:"name" gorm:"not null"`
	StartDate     time.Time   `json:"startDate" gorm:"not null"`
	EndDate       time.Time   `json:"endDate" gorm:"not null"`
	DurationWeeks int         `json:"durationWeeks" gorm:"not null"`
	CurrentWeek   int         `json:"currentWeek" gorm:"not null;default:1"`
	Status        CycleStatus `json:"status" gorm:"not null;default:'active'"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func (c *Cycle) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// WeekStart returns the calendar start of the given 1-based week number.
func (c *Cycle) WeekStart(week int) time.Time {
	return c.StartDate.AddDate(0, 0, 7*(week-1))
}
