package scenario

import (
	"path/filepath"
	"testing"

	"lifeplan-engine/internal/model"
)

func sample() Scenario {
	retirementAge := 62
	inflate := false
	return Scenario{
		Version: 3,
		ID:      "s-1",
		Name:    "Baseline",
		Profile: model.ProfileInput{BirthDate: "1988-04-02", LifeExpectancyYears: 88},
		Settings: model.SettingsInput{
			BaseNetWorth:        42000,
			BaseMonthlyIncome:   5200,
			BaseMonthlyExpenses: 3900,
			RetirementAge:       &retirementAge,
			InflateExpenses:     &inflate,
		},
		Events: []model.LifeEventInput{
			{ID: "e-1", Type: "housing", Amount: 60000, Date: "2029-05-01", Frequency: "once"},
		},
		MicroPlans: []model.MicroPlanInput{
			{ID: "m-1", EffectiveDate: "2027-01-01", MonthlyIncome: 6000, MonthlyExpenses: 4100},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "baseline.toml")
	want := sample()

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if Changed(want, got) {
		ops, _ := Diff(want, got)
		t.Fatalf("expected loaded scenario to match, diff %+v", ops)
	}
	if got.Version != 3 {
		t.Fatalf("expected version 3, got %d", got.Version)
	}
	if got.Settings.InflateIncome != nil {
		t.Fatal("expected unset optional to stay unset")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestChangedIgnoresVersion(t *testing.T) {
	a := sample()
	b := sample()
	b.Version = 9

	if Changed(a, b) {
		t.Fatal("expected version-only edits not to count as changes")
	}
}

func TestChangedIgnoresNilVsEmpty(t *testing.T) {
	a := sample()
	a.Events, a.MicroPlans = nil, nil
	b := sample()
	b.Events, b.MicroPlans = []model.LifeEventInput{}, []model.MicroPlanInput{}

	if Changed(a, b) {
		t.Fatal("expected nil and empty lists to compare equal")
	}
	if got := Bump(a, b); got.Version != a.Version {
		t.Fatalf("expected version %d to be kept, got %d", a.Version, got.Version)
	}
}

func TestDiffReportsEdits(t *testing.T) {
	a := sample()
	b := sample()
	b.Settings.BaseMonthlyExpenses = 4000
	b.Events = append(b.Events, model.LifeEventInput{Type: "travel", Amount: 3000, Date: "2026-08-01", Frequency: "yearly"})

	ops, err := Diff(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %+v", ops)
	}
	if ops[0].Path != "/events/1" || ops[0].Op != "add" {
		t.Fatalf("unexpected op %+v", ops[0])
	}
	if ops[1].Path != "/settings/base_monthly_expenses" || ops[1].Op != "replace" {
		t.Fatalf("unexpected op %+v", ops[1])
	}
}

func TestBump(t *testing.T) {
	prev := sample()

	if got := Bump(prev, sample()); got.Version != prev.Version {
		t.Fatalf("expected unchanged scenario to keep version %d, got %d", prev.Version, got.Version)
	}

	cur := sample()
	cur.Name = "Early retirement"
	got := Bump(prev, cur)
	if got.Version != prev.Version+1 || got.Name != "Early retirement" {
		t.Fatalf("expected bumped edited scenario, got %+v", got)
	}
}
