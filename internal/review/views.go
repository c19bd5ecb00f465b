package review

import (
	"github.com/arnold/resolve-core/internal/models"
	"github.com/google/uuid"
)

// ReviewAction is the review-stage view of an action: the action itself plus
// the owning goal's title for display. Built fresh each time a pipeline
// starts; never persisted.
type ReviewAction struct {
	models.Action
	GoalTitle string `json:"goalTitle"`
}

// PlanAction is a proposed next-week action. Enabled marks inclusion in the
// plan; entries added during planning get a pipeline-local id.
type PlanAction struct {
	ID        uuid.UUID `json:"id"`
	GoalID    uuid.UUID `json:"goalId"`
	GoalTitle string    `json:"goalTitle"`
	Title     string    `json:"title"`
	Target    int       `json:"target"`
	Enabled   bool      `json:"enabled"`
}

// Group collects one goal's review actions, in original order.
type Group struct {
	GoalID    uuid.UUID
	GoalTitle string
	Actions   []ReviewAction
}

// PlanGroup collects one goal's plan actions, in original order.
type PlanGroup struct {
	GoalID    uuid.UUID
	GoalTitle string
	Actions   []PlanAction
}
