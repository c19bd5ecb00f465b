package models

// WeekStatus is a goal's categorical outcome for one reviewed week.
type WeekStatus string

const (
	WeekComplete WeekStatus = "complete"
	WeekPartial  WeekStatus = "partial"
	WeekMissed   WeekStatus = "missed"
)

// MaxWeekHistory caps how many weekly outcomes a goal retains, oldest first.
const MaxWeekHistory = 12

// ClassifyWeek maps a goal's completion percentage to its weekly outcome.
// 75 and above counts as complete, 25 and above as partial.
func ClassifyWeek(percentage int) WeekStatus {
	switch {
	case percentage >= 75:
		return WeekComplete
	case percentage >= 25:
		return WeekPartial
	default:
		return WeekMissed
	}
}
