package store

import (
	"github.com/arnold/resolve-core/internal/models"
	"github.com/google/uuid"
)

// AddAction appends an action to a goal and recomputes that goal's
// percentage. Actions without a title or with a target below 1 are refused.
func (s *Store) AddAction(goalID uuid.UUID, action models.Action) {
	goal := s.findGoal(goalID)
	if goal == nil {
		return
	}
	if action.Title == "" || action.Target < 1 {
		return
	}
	if action.ID == uuid.Nil {
		action.ID = uuid.New()
	}
	action.GoalID = goalID
	action.Position = len(goal.Actions)
	goal.Actions = append(goal.Actions, action)
	goal.Percentage = Aggregate(goal.Actions)
	s.persist()
}

// UpdateAction sets an action's current count verbatim and recomputes the
// owning goal's percentage. The caller clamps to [0, target]; the store does
// not reclamp. Sibling goals are untouched.
func (s *Store) UpdateAction(goalID, actionID uuid.UUID, current int) {
	goal := s.findGoal(goalID)
	if goal == nil {
		return
	}
	for i := range goal.Actions {
		if goal.Actions[i].ID == actionID {
			goal.Actions[i].Current = current
			goal.Percentage = Aggregate(goal.Actions)
			s.persist()
			return
		}
	}
}

// DeleteAction removes an action from a goal and recomputes the percentage.
func (s *Store) DeleteAction(goalID, actionID uuid.UUID) {
	goal := s.findGoal(goalID)
	if goal == nil {
		return
	}
	for i := range goal.Actions {
		if goal.Actions[i].ID == actionID {
			goal.Actions = append(goal.Actions[:i], goal.Actions[i+1:]...)
			goal.Percentage = Aggregate(goal.Actions)
			s.persist()
			return
		}
	}
}
