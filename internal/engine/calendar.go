package engine

import (
	"time"

	"lifeplan-engine/internal/model"
)

// MonthsDiff counts calendar months from start to end, ignoring the day.
func MonthsDiff(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// HorizonMonths is the number of month steps after the first one.
func HorizonMonths(now time.Time, p model.Profile) int {
	return max(0, MonthsDiff(now, p.HorizonEnd()))
}

// AgeAt is month-granular: the birthday counts as reached on the first day
// of the birth month.
func AgeAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() {
		age--
	}
	return age
}

func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

func stepDate(year int, month time.Month, i int) time.Time {
	return time.Date(year, month+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
}
