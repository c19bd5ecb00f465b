package models

// Snapshot is the complete persistable state of the application: the
// onboarding flag, the active cycle, every goal with its nested actions and
// milestones, the week counters, and the review history. It is what the
// persistence adapter saves after each mutation and rehydrates at startup.
type Snapshot struct {
	HasCompletedOnboarding bool         `json:"hasCompletedOnboarding"`
	Cycle                  *Cycle       `json:"cycle"`
	Goals                  []Goal       `json:"goals"`
	CurrentWeek            int          `json:"currentWeek"`
	LastReviewedWeek       *int         `json:"lastReviewedWeek"`
	WeekReviews            []WeekReview `json:"weekReviews"`
}

// InitialSnapshot is the fresh-install state: onboarding not completed, no
// cycle, no goals, week one.
func InitialSnapshot() Snapshot {
	return Snapshot{
		Goals:       []Goal{},
		CurrentWeek: 1,
		WeekReviews: []WeekReview{},
	}
}
