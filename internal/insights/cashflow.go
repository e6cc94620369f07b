package insights

import (
	"fmt"

	"lifeplan-engine/internal/model"
)

type RetirementGapRule struct{}

func (r *RetirementGapRule) Evaluate(in *Input) (model.Insight, bool) {
	s := in.Settings
	if in.firstRetiredMonth() < 0 || s.RetirementMonthlyIncome >= s.BaseMonthlyExpenses {
		return model.Insight{}, false
	}

	desc := fmt.Sprintf("Retirement income of %s a month does not cover expenses of %s.",
		amount(s.RetirementMonthlyIncome), amount(s.BaseMonthlyExpenses))
	if s.BaseMonthlyExpenses > 0 && s.RetirementMonthlyIncome > 0 {
		desc = fmt.Sprintf("Retirement income of %s a month covers %.0f%% of expenses of %s.",
			amount(s.RetirementMonthlyIncome), s.RetirementMonthlyIncome/s.BaseMonthlyExpenses*100, amount(s.BaseMonthlyExpenses))
	}
	return model.Insight{
		ID:          "retirement-gap",
		Type:        model.InsightWarning,
		Title:       "Retirement income gap",
		Description: desc,
	}, true
}

type NegativeCashFlowRule struct{}

func (r *NegativeCashFlowRule) Evaluate(in *Input) (model.Insight, bool) {
	s := in.Settings
	if s.BaseMonthlyExpenses <= s.BaseMonthlyIncome {
		return model.Insight{}, false
	}
	return model.Insight{
		ID:    "negative-cash-flow",
		Type:  model.InsightWarning,
		Title: "Spending exceeds income",
		Description: fmt.Sprintf("Monthly expenses are %s above income; nothing is saved until that changes.",
			amount(s.BaseMonthlyExpenses-s.BaseMonthlyIncome)),
	}, true
}

type RetirementReachedRule struct{}

func (r *RetirementReachedRule) Evaluate(in *Input) (model.Insight, bool) {
	idx := in.firstRetiredMonth()
	if idx < 0 {
		return model.Insight{}, false
	}
	p := in.Result.Monthly[idx]
	return model.Insight{
		ID:    "retirement-reached",
		Type:  model.InsightInfo,
		Title: "Retirement",
		Description: fmt.Sprintf("You reach retirement age %d in %s with a net worth of %s.",
			in.Settings.RetirementAge, month(p.Date), amount(p.NetWorth)),
	}, true
}
