package engine

import (
	"testing"
	"time"
)

func TestMonthsDiff(t *testing.T) {
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{day(2025, time.January, 31), day(2025, time.February, 1), 1},
		{day(2025, time.March, 1), day(2025, time.March, 31), 0},
		{day(2025, time.March, 15), day(2024, time.November, 15), -4},
		{day(2025, time.January, 1), day(2080, time.June, 15), 665},
	}
	for _, c := range cases {
		if got := MonthsDiff(c.start, c.end); got != c.want {
			t.Fatalf("MonthsDiff(%s, %s): expected %d, got %d",
				c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), c.want, got)
		}
	}
}

func TestAgeAtIgnoresDayOfMonth(t *testing.T) {
	birth := day(1990, time.June, 15)

	if age := AgeAt(birth, day(2025, time.May, 31)); age != 34 {
		t.Fatalf("expected 34 in May, got %d", age)
	}
	if age := AgeAt(birth, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)); age != 35 {
		t.Fatalf("expected 35 from the first of the birth month, got %d", age)
	}
}

func TestStepDateRollsYear(t *testing.T) {
	d := stepDate(2025, time.November, 3)
	if d.Year() != 2026 || d.Month() != time.February || d.Day() != 1 {
		t.Fatalf("expected 2026-02-01, got %s", d)
	}
}
