package engine

import (
	"time"

	"lifeplan-engine/internal/model"
)

// Flow is a life event with its direction and ledger amount resolved.
type Flow struct {
	Direction model.Direction
	Amount    float64
	Date      time.Time
	EndDate   *time.Time
	Frequency model.Frequency
}

func ResolveEvents(events []model.LifeEvent) []Flow {
	flows := make([]Flow, len(events))
	for i, e := range events {
		flows[i] = Flow{
			Direction: e.Direction(),
			Amount:    e.SignedAmount(),
			Date:      e.Date,
			EndDate:   e.EndDate,
			Frequency: e.Frequency,
		}
	}
	return flows
}

// EventImpact is the month's income and expenses after events are folded in.
// Income and Expenses start from the base values; monthly events shift them.
type EventImpact struct {
	Income         float64
	Expenses       float64
	ExtraIncome    float64
	ExtraExpenses  float64
	OneTimeOutflow float64
	// OneTimeInflow has no producer yet; one-time income is booked as
	// ExtraIncome instead.
	OneTimeInflow float64
}

func (i EventImpact) MonthIncome() float64 {
	return i.Income + i.ExtraIncome
}

func (i EventImpact) MonthExpenses() float64 {
	return i.Expenses + i.ExtraExpenses
}

// Contribution is the month's surplus, floored at zero.
func (i EventImpact) Contribution() float64 {
	return max(0, i.MonthIncome()-i.MonthExpenses())
}

func (f Flow) withinDuration(date time.Time) bool {
	if f.EndDate == nil {
		return true
	}
	return !date.Before(f.Date) && !date.After(*f.EndDate)
}

// ApplyEventsForMonth folds every flow into the base income and expenses for
// the month starting at date.
func ApplyEventsForMonth(baseIncome, baseExpenses float64, date time.Time, flows []Flow) EventImpact {
	impact := EventImpact{Income: baseIncome, Expenses: baseExpenses}
	current := monthKey(date)

	for _, f := range flows {
		if !f.withinDuration(date) {
			continue
		}

		switch f.Frequency {
		case model.FrequencyOnce:
			if current != monthKey(f.Date) {
				continue
			}
			switch f.Direction {
			case model.DirectionIncome:
				impact.ExtraIncome += f.Amount
			case model.DirectionExpense:
				// Debited as a lump sum and also reported as the month's expense.
				impact.OneTimeOutflow += f.Amount
				impact.ExtraExpenses += f.Amount
			}

		case model.FrequencyMonthly:
			if current < monthKey(f.Date) {
				continue
			}
			switch f.Direction {
			case model.DirectionIncome:
				impact.Income += f.Amount
			case model.DirectionExpense:
				impact.Expenses += f.Amount
			}

		case model.FrequencyYearly:
			if date.Month() != f.Date.Month() || date.Year() < f.Date.Year() {
				continue
			}
			switch f.Direction {
			case model.DirectionIncome:
				impact.ExtraIncome += f.Amount
			case model.DirectionExpense:
				impact.ExtraExpenses += f.Amount
			}
		}
	}

	return impact
}
