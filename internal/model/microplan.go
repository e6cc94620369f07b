package model

import "time"

// MicroPlan overrides baseline income and expenses from EffectiveDate until a
// later plan takes over.
type MicroPlan struct {
	ID              string    `json:"id,omitempty"`
	EffectiveDate   time.Time `json:"effective_date"`
	MonthlyIncome   float64   `json:"monthly_income"`
	MonthlyExpenses float64   `json:"monthly_expenses"`
	// MonthlyContribution is informational and not used by the projection.
	MonthlyContribution float64 `json:"monthly_contribution"`
}

type MicroPlanInput struct {
	ID                  string  `json:"id,omitempty" toml:"id,omitempty"`
	EffectiveDate       string  `json:"effective_date" toml:"effective_date"`
	MonthlyIncome       float64 `json:"monthly_income" toml:"monthly_income"`
	MonthlyExpenses     float64 `json:"monthly_expenses" toml:"monthly_expenses"`
	MonthlyContribution float64 `json:"monthly_contribution" toml:"monthly_contribution"`
}
