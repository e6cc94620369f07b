package engine

import (
	"slices"

	"lifeplan-engine/internal/model"
)

// RollupYearly groups monthly points by calendar year. Net worth is the last
// month seen in the year; flows are summed.
func RollupYearly(monthly []model.MonthlyPoint) []model.YearlyPoint {
	rows := make(map[int]*model.YearlyPoint)
	var years []int

	for _, m := range monthly {
		y := m.Date.Year()
		row, ok := rows[y]
		if !ok {
			row = &model.YearlyPoint{Year: y}
			rows[y] = row
			years = append(years, y)
		}
		row.NetWorth = m.NetWorth
		row.RealNetWorth = m.RealNetWorth
		row.Income += m.Income
		row.Expenses += m.Expenses
		row.Contribution += m.Contribution
		row.Returns += m.Returns
	}

	slices.Sort(years)
	yearly := make([]model.YearlyPoint, 0, len(years))
	for _, y := range years {
		yearly = append(yearly, *rows[y])
	}
	return yearly
}
