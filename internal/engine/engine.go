package engine

import (
	"lifeplan-engine/internal/model"
)

// Project steps month by month from in.Now to the end of the profile's life
// expectancy and returns the monthly series, the yearly rollup and the first
// month at which net worth is zero or below.
func Project(in model.ProjectionInput) model.ProjectionResult {
	s := in.Settings
	monthlyReturn := YearlyToMonthlyRate(s.ExpectedReturnYearly)
	monthlyInflation := YearlyToMonthlyRate(s.InflationYearly)

	totalMonths := HorizonMonths(in.Now, in.Profile)
	plans := sortPlans(in.MicroPlans)
	flows := ResolveEvents(in.Events)

	netWorth := s.BaseNetWorth
	accumulatedInflation := 1.0
	var insolvent *int

	checkInsolvency := func(i int) {
		if i >= 1 && netWorth <= 0 && insolvent == nil {
			idx := i
			insolvent = &idx
		}
	}

	startYear, startMonth := in.Now.Year(), in.Now.Month()
	monthly := make([]model.MonthlyPoint, 0, totalMonths+1)

	for i := 0; i <= totalMonths; i++ {
		date := stepDate(startYear, startMonth, i)
		age := AgeAt(in.Profile.BirthDate, date)
		retired := age >= s.RetirementAge

		var baseIncome, baseExpenses float64
		if plan := activeFromSorted(plans, date); plan != nil {
			baseIncome, baseExpenses = plan.MonthlyIncome, plan.MonthlyExpenses
		} else {
			baseIncome = s.BaseMonthlyIncome
			if retired {
				baseIncome = s.RetirementMonthlyIncome
			}
			baseExpenses = s.BaseMonthlyExpenses
		}

		inflateIncome := s.InflateIncome
		if retired {
			inflateIncome = s.InflateRetirementIncome
		}
		if inflateIncome {
			baseIncome *= accumulatedInflation
		}
		if s.InflateExpenses {
			baseExpenses *= accumulatedInflation
		}

		impact := ApplyEventsForMonth(baseIncome, baseExpenses, date, flows)
		contribution := impact.Contribution()

		netWorth += impact.OneTimeInflow - impact.OneTimeOutflow
		checkInsolvency(i)

		preReturn := netWorth + contribution
		returns := preReturn * monthlyReturn
		netWorth = preReturn + returns
		checkInsolvency(i)

		accumulatedInflation *= 1 + monthlyInflation

		monthly = append(monthly, model.MonthlyPoint{
			Date:         date,
			Age:          age,
			NetWorth:     netWorth,
			RealNetWorth: netWorth / accumulatedInflation,
			Income:       impact.MonthIncome(),
			Expenses:     impact.MonthExpenses(),
			Contribution: contribution,
			Returns:      returns,
		})
	}

	return model.ProjectionResult{
		Monthly:                              monthly,
		Yearly:                               RollupYearly(monthly),
		FirstMonthWithZeroOrNegativeNetWorth: insolvent,
	}
}
