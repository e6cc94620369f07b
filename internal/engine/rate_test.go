package engine

import (
	"math"
	"testing"
)

func TestYearlyToMonthlyRate(t *testing.T) {
	if r := YearlyToMonthlyRate(0); r != 0 {
		t.Fatalf("expected 0, got %v", r)
	}

	r := YearlyToMonthlyRate(6)
	if got := math.Pow(1+r, 12); math.Abs(got-1.06) > 1e-12 {
		t.Fatalf("expected monthly rate to compound back to 6%%, got %v", got)
	}

	if r := YearlyToMonthlyRate(-50); r >= 0 {
		t.Fatalf("expected a negative monthly rate, got %v", r)
	}
}

func TestYearlyToMonthlyRateGuard(t *testing.T) {
	for _, yearly := range []float64{-100, -100.0001, -250, math.Inf(-1)} {
		r := YearlyToMonthlyRate(yearly)
		if r != 0 || math.IsNaN(r) {
			t.Fatalf("YearlyToMonthlyRate(%v): expected 0, got %v", yearly, r)
		}
	}
}
