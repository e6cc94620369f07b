package model

type ProjectionResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Messages            []CalculationMessage `json:"messages"`
	Projection          ProjectionResult     `json:"projection"`
	Insights            []Insight            `json:"insights"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	ScenarioID             string `json:"scenario_id,omitempty"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
	HorizonMonths          int    `json:"horizon_months"`
	Cached                 bool   `json:"cached"`
}

type ErrorResponse struct {
	Status   int                  `json:"status"`
	Message  string               `json:"message"`
	Messages []CalculationMessage `json:"messages,omitempty"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
