package model

const (
	DefaultRetirementAge           = 65
	DefaultRetirementMonthlyIncome = 0.0
)

// Settings is the baseline financial configuration for a projection.
// Rates are percentages: 6 means 6% per year.
type Settings struct {
	BaseNetWorth            float64 `json:"base_net_worth"`
	BaseMonthlyIncome       float64 `json:"base_monthly_income"`
	BaseMonthlyExpenses     float64 `json:"base_monthly_expenses"`
	ExpectedReturnYearly    float64 `json:"expected_return_yearly"`
	InflationYearly         float64 `json:"inflation_yearly"`
	InflateIncome           bool    `json:"inflate_income"`
	InflateExpenses         bool    `json:"inflate_expenses"`
	RetirementAge           int     `json:"retirement_age"`
	RetirementMonthlyIncome float64 `json:"retirement_monthly_income"`
	InflateRetirementIncome bool    `json:"inflate_retirement_income"`
}

// SettingsInput is the wire form of Settings. Optional fields fall back to
// the documented defaults in Resolve.
type SettingsInput struct {
	BaseNetWorth            float64  `json:"base_net_worth" toml:"base_net_worth"`
	BaseMonthlyIncome       float64  `json:"base_monthly_income" toml:"base_monthly_income"`
	BaseMonthlyExpenses     float64  `json:"base_monthly_expenses" toml:"base_monthly_expenses"`
	ExpectedReturnYearly    float64  `json:"expected_return_yearly" toml:"expected_return_yearly"`
	InflationYearly         float64  `json:"inflation_yearly" toml:"inflation_yearly"`
	InflateIncome           *bool    `json:"inflate_income,omitempty" toml:"inflate_income,omitempty"`
	InflateExpenses         *bool    `json:"inflate_expenses,omitempty" toml:"inflate_expenses,omitempty"`
	RetirementAge           *int     `json:"retirement_age,omitempty" toml:"retirement_age,omitempty"`
	RetirementMonthlyIncome *float64 `json:"retirement_monthly_income,omitempty" toml:"retirement_monthly_income,omitempty"`
	InflateRetirementIncome *bool    `json:"inflate_retirement_income,omitempty" toml:"inflate_retirement_income,omitempty"`
}

func (in SettingsInput) Resolve() Settings {
	return Settings{
		BaseNetWorth:            in.BaseNetWorth,
		BaseMonthlyIncome:       in.BaseMonthlyIncome,
		BaseMonthlyExpenses:     in.BaseMonthlyExpenses,
		ExpectedReturnYearly:    in.ExpectedReturnYearly,
		InflationYearly:         in.InflationYearly,
		InflateIncome:           boolOr(in.InflateIncome, true),
		InflateExpenses:         boolOr(in.InflateExpenses, true),
		RetirementAge:           intOr(in.RetirementAge, DefaultRetirementAge),
		RetirementMonthlyIncome: floatOr(in.RetirementMonthlyIncome, DefaultRetirementMonthlyIncome),
		InflateRetirementIncome: boolOr(in.InflateRetirementIncome, true),
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
