package model

type ProjectionRequest struct {
	ScenarioID string           `json:"scenario_id,omitempty"`
	Now        string           `json:"now,omitempty"`
	Profile    ProfileInput     `json:"profile"`
	Settings   SettingsInput    `json:"settings"`
	Events     []LifeEventInput `json:"events"`
	MicroPlans []MicroPlanInput `json:"micro_plans,omitempty"`
}

type ProfileInput struct {
	BirthDate           string `json:"birth_date" toml:"birth_date"`
	LifeExpectancyYears int    `json:"life_expectancy_years" toml:"life_expectancy_years"`
}
