package engine

import (
	"slices"
	"time"

	"lifeplan-engine/internal/model"
)

// ActiveMicroPlan returns the plan in force for target's month: the one with
// the latest effective date whose (year, month) is not after target's.
func ActiveMicroPlan(plans []model.MicroPlan, target time.Time) *model.MicroPlan {
	if len(plans) == 0 {
		return nil
	}
	return activeFromSorted(sortPlans(plans), target)
}

func sortPlans(plans []model.MicroPlan) []model.MicroPlan {
	sorted := slices.Clone(plans)
	slices.SortStableFunc(sorted, func(a, b model.MicroPlan) int {
		return a.EffectiveDate.Compare(b.EffectiveDate)
	})
	return sorted
}

func activeFromSorted(sorted []model.MicroPlan, target time.Time) *model.MicroPlan {
	var active *model.MicroPlan
	ty, tm := target.Year(), target.Month()
	for i := range sorted {
		py, pm := sorted[i].EffectiveDate.Year(), sorted[i].EffectiveDate.Month()
		if py < ty || (py == ty && pm <= tm) {
			active = &sorted[i]
		}
	}
	return active
}
