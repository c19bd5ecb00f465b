package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Goal struct {
	ID                uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Position          int          `json:"position" gorm:"not null"`
	Title             string       `json:"title" gorm:"not null"`
	IdentityStatement *string      `json:"identityStatement"`
	Percentage        int          `json:"percentage" gorm:"not null;default:0"`
	WeekHistory       []WeekStatus `json:"weekHistory" gorm:"serializer:json"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	Actions           []Action     `json:"actions" gorm:"foreignKey:GoalID"`
	Milestones        []Milestone  `json:"milestones" gorm:"foreignKey:GoalID"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Normalize materializes absent collections as empty slices so business
// logic never sees nil.
func (g *Goal) Normalize() {
	if g.WeekHistory == nil {
		g.WeekHistory = []WeekStatus{}
	}
	if g.Actions == nil {
		g.Actions = []Action{}
	}
	if g.Milestones == nil {
		g.Milestones = []Milestone{}
	}
}

// AppendWeekStatus records one weekly outcome, dropping the oldest entry
// once the history holds MaxWeekHistory weeks.
func (g *Goal) AppendWeekStatus(status WeekStatus) {
	g.WeekHistory = append(g.WeekHistory, status)
	if len(g.WeekHistory) > MaxWeekHistory {
		g.WeekHistory = g.WeekHistory[len(g.WeekHistory)-MaxWeekHistory:]
	}
}

// Goal DTOs
type UpdateGoalRequest struct {
	Title             *string `json:"title"`
	IdentityStatement *string `json:"identityStatement"`
}
