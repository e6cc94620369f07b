package cli

import (
	"strings"
	"testing"
	"time"

	"lifeplan-engine/internal/model"
)

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:         "0",
		-0.3:      "0",
		999.6:     "1,000",
		1234567.8: "1,234,568",
		-45000.2:  "-45,000",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	cases := map[float64]string{
		9500:          "9,500",
		12500:         "12.5K",
		3_400_000:     "3.4M",
		-2_100_000:    "-2.1M",
		7_240_000_000: "7.2B",
	}
	for in, want := range cases {
		if got := FormatCompact(in); got != want {
			t.Fatalf("FormatCompact(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestYearlyTableHighlightsInsolvency(t *testing.T) {
	idx := 2
	res := model.ProjectionResult{
		Monthly: []model.MonthlyPoint{
			{Date: time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)},
			{Date: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)},
			{Date: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		},
		Yearly: []model.YearlyPoint{
			{Year: 2025, NetWorth: 100},
			{Year: 2026, NetWorth: -50},
		},
		FirstMonthWithZeroOrNegativeNetWorth: &idx,
	}

	table := YearlyTable(res)

	if len(table.Rows) != 2 || table.Rows[1][0] != "2026" {
		t.Fatalf("unexpected rows %+v", table.Rows)
	}
	if table.Highlight[0] || !table.Highlight[1] {
		t.Fatalf("expected only 2026 highlighted, got %+v", table.Highlight)
	}
	if out := table.Render(); !strings.Contains(out, "Net worth") || !strings.Contains(out, "2026") {
		t.Fatalf("unexpected render %q", out)
	}
}
