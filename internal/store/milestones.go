package store

import (
	"time"

	"github.com/arnold/resolve-core/internal/models"
	"github.com/google/uuid"
)

// AddMilestone appends a milestone to a goal. Milestones without a title are
// refused.
func (s *Store) AddMilestone(goalID uuid.UUID, milestone models.Milestone) {
	goal := s.findGoal(goalID)
	if goal == nil {
		return
	}
	if milestone.Title == "" {
		return
	}
	if milestone.ID == uuid.Nil {
		milestone.ID = uuid.New()
	}
	milestone.GoalID = goalID
	milestone.Position = len(goal.Milestones)
	if !milestone.Completed {
		milestone.CompletedAt = nil
	} else if milestone.CompletedAt == nil {
		now := time.Now()
		milestone.CompletedAt = &now
	}
	goal.Milestones = append(goal.Milestones, milestone)
	s.persist()
}

// UpdateMilestone merges the provided fields into a milestone. CompletedAt is
// managed here: it is stamped exactly when Completed flips to true and
// cleared when it flips back to false.
func (s *Store) UpdateMilestone(goalID, milestoneID uuid.UUID, req models.UpdateMilestoneRequest) {
	goal := s.findGoal(goalID)
	if goal == nil {
		return
	}
	for i := range goal.Milestones {
		m := &goal.Milestones[i]
		if m.ID != milestoneID {
			continue
		}
		if req.Title != nil && *req.Title != "" {
			m.Title = *req.Title
		}
		if req.Completed != nil && *req.Completed != m.Completed {
			m.Completed = *req.Completed
			if m.Completed {
				now := time.Now()
				m.CompletedAt = &now
			} else {
				m.CompletedAt = nil
			}
		}
		s.persist()
		return
	}
}

// DeleteMilestone removes a milestone from a goal.
func (s *Store) DeleteMilestone(goalID, milestoneID uuid.UUID) {
	goal := s.findGoal(goalID)
	if goal == nil {
		return
	}
	for i := range goal.Milestones {
		if goal.Milestones[i].ID == milestoneID {
			goal.Milestones = append(goal.Milestones[:i], goal.Milestones[i+1:]...)
			s.persist()
			return
		}
	}
}
