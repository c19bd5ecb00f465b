package store

import (
	"time"

	"github.com/arnold/resolve-core/internal/models"
)

// CompleteWeeklyReview closes out the given week: every goal's current
// percentage is classified into a WeekStatus and appended to its history
// (capped at the most recent 12 weeks), the week is recorded as last
// reviewed, and an aggregate WeekReview is appended. Percentages and action
// counters are left alone; rollover is a separate call so classification
// always reads pre-reset values.
func (s *Store) CompleteWeeklyReview(weekNumber int) {
	var all []models.Action
	for i := range s.state.Goals {
		goal := &s.state.Goals[i]
		goal.AppendWeekStatus(models.ClassifyWeek(goal.Percentage))
		all = append(all, goal.Actions...)
	}
	s.state.LastReviewedWeek = &weekNumber

	now := time.Now()
	review := models.WeekReview{
		WeekNumber:  weekNumber,
		Score:       Aggregate(all),
		CompletedAt: &now,
	}
	if s.state.Cycle != nil {
		review.WeekStart = s.state.Cycle.WeekStart(weekNumber)
	}
	s.state.WeekReviews = append(s.state.WeekReviews, review)
	s.persist()
}

// ResetActionsForNewWeek advances the week counter and zeroes every action's
// current count and every goal's percentage. Targets and titles survive.
func (s *Store) ResetActionsForNewWeek() {
	s.state.CurrentWeek++
	if s.state.Cycle != nil {
		s.state.Cycle.CurrentWeek = s.state.CurrentWeek
	}
	for i := range s.state.Goals {
		goal := &s.state.Goals[i]
		goal.Percentage = 0
		for j := range goal.Actions {
			goal.Actions[j].Current = 0
		}
	}
	s.persist()
}
