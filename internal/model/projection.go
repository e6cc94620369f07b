package model

import "time"

// ProjectionInput is everything one projection run needs. Now marks the
// projection start; only its year and month are used.
type ProjectionInput struct {
	Now        time.Time   `json:"now"`
	Profile    Profile     `json:"profile"`
	Settings   Settings    `json:"settings"`
	Events     []LifeEvent `json:"events"`
	MicroPlans []MicroPlan `json:"micro_plans"`
}

type MonthlyPoint struct {
	Date         time.Time `json:"date"`
	Age          int       `json:"age"`
	NetWorth     float64   `json:"net_worth"`
	RealNetWorth float64   `json:"real_net_worth"`
	Income       float64   `json:"income"`
	Expenses     float64   `json:"expenses"`
	Contribution float64   `json:"contribution"`
	Returns      float64   `json:"returns"`
}

// YearlyPoint rolls up one calendar year: net worth fields are the last
// month's snapshot, flow fields are sums.
type YearlyPoint struct {
	Year         int     `json:"year"`
	NetWorth     float64 `json:"net_worth"`
	RealNetWorth float64 `json:"real_net_worth"`
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Contribution float64 `json:"contribution"`
	Returns      float64 `json:"returns"`
}

type ProjectionResult struct {
	Monthly []MonthlyPoint `json:"monthly"`
	Yearly  []YearlyPoint  `json:"yearly"`
	// FirstMonthWithZeroOrNegativeNetWorth indexes Monthly; nil when net
	// worth stays positive for the whole horizon.
	FirstMonthWithZeroOrNegativeNetWorth *int `json:"first_month_with_zero_or_negative_net_worth"`
}
