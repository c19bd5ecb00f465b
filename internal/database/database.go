package database

import (
	"strings"

	"github.com/arnold/resolve-core/internal/config"
	"github.com/arnold/resolve-core/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// appState is the single-row table holding the counters and flags that live
// outside any entity.
type appState struct {
	ID                     int `gorm:"primaryKey"`
	HasCompletedOnboarding bool
	CurrentWeek            int
	LastReviewedWeek       *int
}

// Connect opens the database behind the snapshot store.
// PostgreSQL when the URL starts with postgres, SQLite otherwise.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the snapshot tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&appState{},
		&models.Cycle{},
		&models.Goal{},
		&models.Action{},
		&models.Milestone{},
		&models.WeekReview{},
	)
}
