package engine

import "math"

// YearlyToMonthlyRate converts an annual percentage into the effective
// monthly compounding rate. Rates at or below -100% return 0.
func YearlyToMonthlyRate(yearlyPercent float64) float64 {
	r := yearlyPercent / 100
	if r <= -1 {
		return 0
	}
	return math.Pow(1+r, 1.0/12) - 1
}
