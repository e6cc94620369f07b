package insights

import (
	"fmt"

	"lifeplan-engine/internal/model"
)

type InsolvencyRule struct{}

func (r *InsolvencyRule) Evaluate(in *Input) (model.Insight, bool) {
	idx := in.Result.FirstMonthWithZeroOrNegativeNetWorth
	if idx == nil || *idx < 0 || *idx >= len(in.Result.Monthly) {
		return model.Insight{}, false
	}
	p := in.Result.Monthly[*idx]
	return model.Insight{
		ID:    "insolvency",
		Type:  model.InsightDanger,
		Title: "Savings run out",
		Description: fmt.Sprintf("Net worth falls to %s in %s, at age %d.",
			amount(p.NetWorth), month(p.Date), p.Age),
	}, true
}

type OnTrackRule struct{}

func (r *OnTrackRule) Evaluate(in *Input) (model.Insight, bool) {
	if in.Result.FirstMonthWithZeroOrNegativeNetWorth != nil {
		return model.Insight{}, false
	}
	last, ok := in.last()
	if !ok || last.NetWorth <= 0 {
		return model.Insight{}, false
	}
	return model.Insight{
		ID:    "on-track",
		Type:  model.InsightSuccess,
		Title: "Savings last a lifetime",
		Description: fmt.Sprintf("Net worth stays positive through age %d and ends at %s.",
			last.Age, amount(last.NetWorth)),
	}, true
}

type InflationErosionRule struct{}

func (r *InflationErosionRule) Evaluate(in *Input) (model.Insight, bool) {
	last, ok := in.last()
	if !ok || last.NetWorth <= 0 || last.RealNetWorth >= last.NetWorth/2 {
		return model.Insight{}, false
	}
	return model.Insight{
		ID:    "inflation-erosion",
		Type:  model.InsightInfo,
		Title: "Inflation halves your final balance",
		Description: fmt.Sprintf("The final %s is worth %s in today's money.",
			amount(last.NetWorth), amount(last.RealNetWorth)),
	}, true
}
