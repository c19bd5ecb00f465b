// Package database persists store snapshots through gorm, backed by SQLite
// by default and PostgreSQL when configured.
package database

import (
	"errors"
	"fmt"

	"github.com/arnold/resolve-core/internal/config"
	"github.com/arnold/resolve-core/internal/models"
	"gorm.io/gorm"
)

// Adapter implements the store's Persister contract on a gorm database.
// Save replaces the whole snapshot transactionally; Load reassembles it with
// entity ids and ordering intact.
type Adapter struct {
	db *gorm.DB
}

// Open connects, migrates, and returns a ready Adapter.
func Open(cfg *config.Config) (*Adapter, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &Adapter{db: db}, nil
}

// NewAdapter wraps an already-open database.
func NewAdapter(db *gorm.DB) *Adapter {
	return &Adapter{db: db}
}

// Save writes the complete snapshot, replacing whatever was stored before.
func (a *Adapter) Save(snap models.Snapshot) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Action{},
			&models.Milestone{},
			&models.Goal{},
			&models.Cycle{},
			&models.WeekReview{},
			&appState{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clearing previous snapshot: %w", err)
			}
		}

		state := appState{
			ID:                     1,
			HasCompletedOnboarding: snap.HasCompletedOnboarding,
			CurrentWeek:            snap.CurrentWeek,
			LastReviewedWeek:       snap.LastReviewedWeek,
		}
		if err := tx.Create(&state).Error; err != nil {
			return fmt.Errorf("saving app state: %w", err)
		}

		if snap.Cycle != nil {
			cycle := *snap.Cycle
			if err := tx.Create(&cycle).Error; err != nil {
				return fmt.Errorf("saving cycle: %w", err)
			}
		}

		for i := range snap.Goals {
			goal := snap.Goals[i]
			goal.Position = i
			for j := range goal.Actions {
				goal.Actions[j].Position = j
			}
			for j := range goal.Milestones {
				goal.Milestones[j].Position = j
			}
			if err := tx.Create(&goal).Error; err != nil {
				return fmt.Errorf("saving goal %s: %w", goal.ID, err)
			}
		}

		for i := range snap.WeekReviews {
			review := snap.WeekReviews[i]
			if err := tx.Create(&review).Error; err != nil {
				return fmt.Errorf("saving week review %d: %w", review.WeekNumber, err)
			}
		}

		return nil
	})
}

// Load reads the stored snapshot. A database with no app state row is a
// fresh install and returns nil without error.
func (a *Adapter) Load() (*models.Snapshot, error) {
	var state appState
	if err := a.db.First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading app state: %w", err)
	}

	snap := models.Snapshot{
		HasCompletedOnboarding: state.HasCompletedOnboarding,
		CurrentWeek:            state.CurrentWeek,
		LastReviewedWeek:       state.LastReviewedWeek,
		Goals:                  []models.Goal{},
		WeekReviews:            []models.WeekReview{},
	}

	var cycle models.Cycle
	if err := a.db.First(&cycle).Error; err == nil {
		snap.Cycle = &cycle
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loading cycle: %w", err)
	}

	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position") }
	if err := a.db.
		Preload("Actions", byPosition).
		Preload("Milestones", byPosition).
		Order("position").
		Find(&snap.Goals).Error; err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	for i := range snap.Goals {
		snap.Goals[i].Normalize()
	}

	if err := a.db.Order("week_number").Find(&snap.WeekReviews).Error; err != nil {
		return nil, fmt.Errorf("loading week reviews: %w", err)
	}

	return &snap, nil
}
