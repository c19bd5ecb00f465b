package store

import "github.com/google/uuid"

// Confirmer is supplied by the presentation layer to answer "are you sure"
// prompts. The store never blocks on dialogs itself; destructive operations
// go through these wrappers when a confirmation step is wanted, or straight
// to the unconditional operations when it is not.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// DeleteGoalConfirmed deletes the goal only if the confirmer agrees.
// Returns whether the delete was performed.
func (s *Store) DeleteGoalConfirmed(c Confirmer, id uuid.UUID) bool {
	if c != nil && !c.Confirm("Delete this goal and all of its actions and milestones?") {
		return false
	}
	s.DeleteGoal(id)
	return true
}

// ResetStoreConfirmed wipes all data only if the confirmer agrees.
// Returns whether the reset was performed.
func (s *Store) ResetStoreConfirmed(c Confirmer) bool {
	if c != nil && !c.Confirm("Reset all data? This cannot be undone.") {
		return false
	}
	s.ResetStore()
	return true
}
