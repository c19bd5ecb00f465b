package store

import (
	"time"

	"github.com/arnold/resolve-core/internal/models"
	"github.com/google/uuid"
)

// AddGoal appends a goal to the collection. Goals without a title are
// refused. Absent collections are materialized, nested actions and
// milestones pass the same validation as AddAction and AddMilestone
// (invalid entries are dropped), and the percentage is derived from the
// actions the goal arrives with.
func (s *Store) AddGoal(goal models.Goal) {
	if goal.Title == "" {
		return
	}
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	goal.Normalize()
	goal.Position = len(s.state.Goals)

	actions := make([]models.Action, 0, len(goal.Actions))
	for _, action := range goal.Actions {
		if action.Title == "" || action.Target < 1 {
			continue
		}
		if action.ID == uuid.Nil {
			action.ID = uuid.New()
		}
		action.GoalID = goal.ID
		action.Position = len(actions)
		actions = append(actions, action)
	}
	goal.Actions = actions

	milestones := make([]models.Milestone, 0, len(goal.Milestones))
	for _, milestone := range goal.Milestones {
		if milestone.Title == "" {
			continue
		}
		if milestone.ID == uuid.Nil {
			milestone.ID = uuid.New()
		}
		milestone.GoalID = goal.ID
		milestone.Position = len(milestones)
		if !milestone.Completed {
			milestone.CompletedAt = nil
		} else if milestone.CompletedAt == nil {
			now := time.Now()
			milestone.CompletedAt = &now
		}
		milestones = append(milestones, milestone)
	}
	goal.Milestones = milestones

	goal.Percentage = Aggregate(goal.Actions)
	s.state.Goals = append(s.state.Goals, goal)
	s.persist()
}

// UpdateGoal merges the provided fields into the goal. A nil field is left
// untouched; an empty title is refused field-wise so a saved goal never loses
// its title.
func (s *Store) UpdateGoal(id uuid.UUID, req models.UpdateGoalRequest) {
	goal := s.findGoal(id)
	if goal == nil {
		return
	}
	if req.Title != nil && *req.Title != "" {
		goal.Title = *req.Title
	}
	if req.IdentityStatement != nil {
		goal.IdentityStatement = req.IdentityStatement
	}
	s.persist()
}

// DeleteGoal removes the goal and, with it, every action and milestone it
// owns. Surviving goals are renumbered so positions stay dense. Unknown ids
// are a no-op.
func (s *Store) DeleteGoal(id uuid.UUID) {
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			s.state.Goals = append(s.state.Goals[:i], s.state.Goals[i+1:]...)
			for j := range s.state.Goals {
				s.state.Goals[j].Position = j
			}
			s.persist()
			return
		}
	}
}
