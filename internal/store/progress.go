package store

import (
	"math"

	"github.com/arnold/resolve-core/internal/models"
)

// Aggregate computes a goal's completion percentage from its action list:
// round(100 * sum(current) / sum(target)), half rounding up. An empty list
// or a zero total target yields 0.
func Aggregate(actions []models.Action) int {
	totalCurrent := 0
	totalTarget := 0
	for _, a := range actions {
		totalCurrent += a.Current
		totalTarget += a.Target
	}
	if totalTarget <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(totalCurrent) / float64(totalTarget)))
}
