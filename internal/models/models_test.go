package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyWeekBoundaries(t *testing.T) {
	assert.Equal(t, WeekComplete, ClassifyWeek(100))
	assert.Equal(t, WeekComplete, ClassifyWeek(75))
	assert.Equal(t, WeekPartial, ClassifyWeek(74))
	assert.Equal(t, WeekPartial, ClassifyWeek(25))
	assert.Equal(t, WeekMissed, ClassifyWeek(24))
	assert.Equal(t, WeekMissed, ClassifyWeek(0))
}

func TestAppendWeekStatusCap(t *testing.T) {
	var g Goal
	for i := 0; i < MaxWeekHistory; i++ {
		g.AppendWeekStatus(WeekComplete)
	}
	assert.Len(t, g.WeekHistory, MaxWeekHistory)

	g.AppendWeekStatus(WeekMissed)
	assert.Len(t, g.WeekHistory, MaxWeekHistory)
	assert.Equal(t, WeekMissed, g.WeekHistory[MaxWeekHistory-1])
}

func TestNormalize(t *testing.T) {
	var g Goal
	g.Normalize()
	assert.NotNil(t, g.WeekHistory)
	assert.NotNil(t, g.Actions)
	assert.NotNil(t, g.Milestones)

	g.Actions = append(g.Actions, Action{Title: "run"})
	g.Normalize()
	assert.Len(t, g.Actions, 1)
}

func TestCycleWeekStart(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	c := Cycle{StartDate: start, DurationWeeks: 12}
	assert.Equal(t, start, c.WeekStart(1))
	assert.Equal(t, start.AddDate(0, 0, 21), c.WeekStart(4))
}

func TestInitialSnapshot(t *testing.T) {
	snap := InitialSnapshot()
	assert.False(t, snap.HasCompletedOnboarding)
	assert.Nil(t, snap.Cycle)
	assert.Empty(t, snap.Goals)
	assert.Equal(t, 1, snap.CurrentWeek)
	assert.Nil(t, snap.LastReviewedWeek)
}
