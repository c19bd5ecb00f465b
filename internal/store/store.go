// Package store holds the authoritative in-memory application state and the
// closed set of mutation operations on it. Every operation is synchronous and
// total: missing ids and invalid input are no-ops, never errors. Callers run
// operations one at a time; the store does no locking of its own.
package store

import (
	"log/slog"

	"github.com/arnold/resolve-core/internal/models"
	"github.com/google/uuid"
)

// Persister is the durable-storage contract the store consumes. Load returns
// nil when no prior snapshot exists; both directions treat corruption as
// absence rather than a fatal condition.
type Persister interface {
	Load() (*models.Snapshot, error)
	Save(models.Snapshot) error
}

// Store owns the canonical Cycle and Goal collection. A nil Persister is
// valid and leaves the store purely in-memory.
type Store struct {
	state     models.Snapshot
	persister Persister
	log       *slog.Logger
}

// New builds a Store, rehydrating from the persister when a prior snapshot
// exists. A missing or unreadable snapshot means a fresh install.
func New(p Persister, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		state:     models.InitialSnapshot(),
		persister: p,
		log:       log,
	}
	if p != nil {
		snap, err := p.Load()
		if err != nil {
			log.Warn("loading snapshot failed, starting fresh", "error", err)
		} else if snap != nil {
			if snap.Goals == nil {
				snap.Goals = []models.Goal{}
			}
			for i := range snap.Goals {
				snap.Goals[i].Normalize()
			}
			if snap.CurrentWeek < 1 {
				snap.CurrentWeek = 1
			}
			if snap.WeekReviews == nil {
				snap.WeekReviews = []models.WeekReview{}
			}
			s.state = *snap
		}
	}
	return s
}

// Read surface

func (s *Store) HasCompletedOnboarding() bool { return s.state.HasCompletedOnboarding }
func (s *Store) Cycle() *models.Cycle         { return s.state.Cycle }
func (s *Store) CurrentWeek() int             { return s.state.CurrentWeek }
func (s *Store) LastReviewedWeek() *int       { return s.state.LastReviewedWeek }

func (s *Store) WeekReviews() []models.WeekReview { return s.state.WeekReviews }

// Goals returns a deep copy of the goal collection. Mutating the result does
// not change the store; all writes go through the store's operations.
func (s *Store) Goals() []models.Goal {
	goals := make([]models.Goal, len(s.state.Goals))
	for i, g := range s.state.Goals {
		goals[i] = cloneGoal(g)
	}
	return goals
}

// Goal returns a deep copy of the goal with the given id.
func (s *Store) Goal(id uuid.UUID) (models.Goal, bool) {
	if g := s.findGoal(id); g != nil {
		return cloneGoal(*g), true
	}
	return models.Goal{}, false
}

// SetCycle replaces the active cycle wholesale.
func (s *Store) SetCycle(cycle models.Cycle) {
	if cycle.Status == "" {
		cycle.Status = models.CycleActive
	}
	if cycle.CurrentWeek < 1 {
		cycle.CurrentWeek = 1
	}
	s.state.Cycle = &cycle
	s.persist()
}

// CompleteOnboarding marks onboarding done. One-way and idempotent.
func (s *Store) CompleteOnboarding() {
	s.state.HasCompletedOnboarding = true
	s.persist()
}

// ResetStore wipes everything back to the fresh-install state.
func (s *Store) ResetStore() {
	s.state = models.InitialSnapshot()
	s.persist()
}

func (s *Store) findGoal(id uuid.UUID) *models.Goal {
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			return &s.state.Goals[i]
		}
	}
	return nil
}

// persist writes a deep copy of the current state through the persister.
// Failures are logged and swallowed: in-memory state stays authoritative for
// the running session.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.snapshot()); err != nil {
		s.log.Error("saving snapshot failed", "error", err)
	}
}

// snapshot returns a deep copy of the state, safe to hand to a persister
// that serializes it after this call returns.
func (s *Store) snapshot() models.Snapshot {
	snap := s.state
	if s.state.Cycle != nil {
		cycle := *s.state.Cycle
		snap.Cycle = &cycle
	}
	if s.state.LastReviewedWeek != nil {
		week := *s.state.LastReviewedWeek
		snap.LastReviewedWeek = &week
	}
	snap.Goals = make([]models.Goal, len(s.state.Goals))
	for i, g := range s.state.Goals {
		snap.Goals[i] = cloneGoal(g)
	}
	snap.WeekReviews = append([]models.WeekReview{}, s.state.WeekReviews...)
	return snap
}

// cloneGoal copies a goal along with its owned collections so the result
// shares no backing arrays with the store's state.
func cloneGoal(g models.Goal) models.Goal {
	g.WeekHistory = append([]models.WeekStatus{}, g.WeekHistory...)
	g.Actions = append([]models.Action{}, g.Actions...)
	g.Milestones = append([]models.Milestone{}, g.Milestones...)
	return g
}
