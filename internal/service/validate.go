package service

import (
	"fmt"
	"time"

	"lifeplan-engine/internal/model"
)

// validator collects coded messages while converting a request into engine
// input.
type validator struct {
	msgs []model.CalculationMessage
}

func (v *validator) add(level, code, format string, args ...any) {
	v.msgs = append(v.msgs, model.CalculationMessage{
		ID:      len(v.msgs),
		Level:   level,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) date(s, code, field string) (time.Time, bool) {
	t, err := model.ParseDate(s)
	if err != nil {
		v.add(model.LevelCritical, code, "%s %q is not a valid date", field, s)
		return time.Time{}, false
	}
	return t, true
}

// BuildInput converts a wire request into engine input. now is used when the
// request does not pin the projection start. CRITICAL messages mean the
// input must not be projected.
func BuildInput(req *model.ProjectionRequest, now time.Time) (model.ProjectionInput, []model.CalculationMessage) {
	v := &validator{}
	in := model.ProjectionInput{
		Settings: req.Settings.Resolve(),
	}

	start := now
	if req.Now != "" {
		if t, ok := v.date(req.Now, "INVALID_NOW", "now"); ok {
			start = t
		}
	}
	// only the month matters to the engine
	in.Now = time.Date(start.Year(), start.Month(), 1, 12, 0, 0, 0, time.UTC)

	if req.Profile.BirthDate == "" {
		v.add(model.LevelCritical, "MISSING_BIRTH_DATE", "profile.birth_date is required")
	} else if t, ok := v.date(req.Profile.BirthDate, "INVALID_BIRTH_DATE", "profile.birth_date"); ok {
		in.Profile.BirthDate = t
	}

	if req.Profile.LifeExpectancyYears <= 0 {
		v.add(model.LevelCritical, "INVALID_LIFE_EXPECTANCY",
			"profile.life_expectancy_years must be positive, got %d", req.Profile.LifeExpectancyYears)
	}
	in.Profile.LifeExpectancyYears = req.Profile.LifeExpectancyYears

	in.Events = make([]model.LifeEvent, 0, len(req.Events))
	for i, e := range req.Events {
		if ev, ok := buildEvent(v, i, e); ok {
			in.Events = append(in.Events, ev)
		}
	}

	in.MicroPlans = make([]model.MicroPlan, 0, len(req.MicroPlans))
	for i, p := range req.MicroPlans {
		t, ok := v.date(p.EffectiveDate, "INVALID_EFFECTIVE_DATE", fmt.Sprintf("micro_plans[%d].effective_date", i))
		if !ok {
			continue
		}
		in.MicroPlans = append(in.MicroPlans, model.MicroPlan{
			ID:                  p.ID,
			EffectiveDate:       t,
			MonthlyIncome:       p.MonthlyIncome,
			MonthlyExpenses:     p.MonthlyExpenses,
			MonthlyContribution: p.MonthlyContribution,
		})
	}

	return in, v.msgs
}

func buildEvent(v *validator, i int, e model.LifeEventInput) (model.LifeEvent, bool) {
	field := fmt.Sprintf("events[%d]", i)

	date, ok := v.date(e.Date, "INVALID_EVENT_DATE", field+".date")
	if !ok {
		return model.LifeEvent{}, false
	}

	ev := model.LifeEvent{
		ID:               e.ID,
		Type:             model.EventType(e.Type),
		Amount:           e.Amount,
		Date:             date,
		Frequency:        model.Frequency(e.Frequency),
		InflationIndexed: e.InflationIndexed,
	}

	if e.EndDate != "" {
		end, ok := v.date(e.EndDate, "INVALID_EVENT_END_DATE", field+".end_date")
		if !ok {
			return model.LifeEvent{}, false
		}
		ev.EndDate = &end
		if end.Before(date) {
			v.add(model.LevelWarning, "END_BEFORE_START",
				"%s ends before it starts and will have no effect", field)
		}
	}

	if !ev.Type.Known() {
		v.add(model.LevelWarning, "UNKNOWN_EVENT_TYPE",
			"%s has unknown type %q and is treated as an expense", field, e.Type)
	}
	if !ev.Frequency.Known() {
		v.add(model.LevelWarning, "UNKNOWN_FREQUENCY",
			"%s has unknown frequency %q and will have no effect", field, e.Frequency)
	}

	return ev, true
}
