// Package insights turns a finished projection into short advisory messages.
package insights

import "lifeplan-engine/internal/model"

// Input is what every rule sees.
type Input struct {
	Result   model.ProjectionResult
	Profile  model.Profile
	Settings model.Settings
}

// Rule inspects a projection and reports at most one insight.
type Rule interface {
	Evaluate(in *Input) (model.Insight, bool)
}

// rules run in this order and the output keeps it.
var rules = []Rule{
	&InsolvencyRule{},
	&RetirementGapRule{},
	&NegativeCashFlowRule{},
	&InflationErosionRule{},
	&OnTrackRule{},
	&RetirementReachedRule{},
}

// Generate evaluates every rule against the projection.
func Generate(result model.ProjectionResult, profile model.Profile, settings model.Settings) []model.Insight {
	in := &Input{Result: result, Profile: profile, Settings: settings}

	out := []model.Insight{}
	for _, r := range rules {
		if insight, ok := r.Evaluate(in); ok {
			out = append(out, insight)
		}
	}
	return out
}

func (in *Input) last() (model.MonthlyPoint, bool) {
	if len(in.Result.Monthly) == 0 {
		return model.MonthlyPoint{}, false
	}
	return in.Result.Monthly[len(in.Result.Monthly)-1], true
}

// firstRetiredMonth returns the index of the first month at or past
// retirement age, or -1.
func (in *Input) firstRetiredMonth() int {
	for i, p := range in.Result.Monthly {
		if p.Age >= in.Settings.RetirementAge {
			return i
		}
	}
	return -1
}
