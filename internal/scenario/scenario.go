// Package scenario holds the versioned, user-editable description of a life
// plan and knows how to persist it as TOML and detect edits.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"lifeplan-engine/internal/jsonpatch"
	"lifeplan-engine/internal/model"
)

// Scenario is the full editable state of a plan. Version increases each time
// a changed snapshot is accepted.
type Scenario struct {
	Version    int                    `json:"version" toml:"version"`
	ID         string                 `json:"id,omitempty" toml:"id,omitempty"`
	Name       string                 `json:"name,omitempty" toml:"name,omitempty"`
	Profile    model.ProfileInput     `json:"profile" toml:"profile"`
	Settings   model.SettingsInput    `json:"settings" toml:"settings"`
	Events     []model.LifeEventInput `json:"events" toml:"events"`
	MicroPlans []model.MicroPlanInput `json:"micro_plans" toml:"micro_plans"`
}

// Request builds the projection request for this scenario. An empty now lets
// the service pick the current month.
func (s Scenario) Request(now string) model.ProjectionRequest {
	return model.ProjectionRequest{
		ScenarioID: s.ID,
		Now:        now,
		Profile:    s.Profile,
		Settings:   s.Settings,
		Events:     s.Events,
		MicroPlans: s.MicroPlans,
	}
}

// Load reads a scenario from a TOML file.
func Load(path string) (Scenario, error) {
	var s Scenario
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading scenario: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return s, nil
}

// Save writes a scenario as TOML, creating the parent directory.
func Save(path string, s Scenario) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating scenario dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating scenario file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing scenario file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	return nil
}

// normalized clears the version and replaces nil lists with empty ones, so a
// scenario without events diffs equal whether it came from TOML or JSON.
func (s Scenario) normalized() Scenario {
	s.Version = 0
	if s.Events == nil {
		s.Events = []model.LifeEventInput{}
	}
	if s.MicroPlans == nil {
		s.MicroPlans = []model.MicroPlanInput{}
	}
	return s
}

// Diff returns the patch from prev to cur, ignoring the version counter.
func Diff(prev, cur Scenario) ([]jsonpatch.Op, error) {
	prev, cur = prev.normalized(), cur.normalized()

	a, err := jsonpatch.Decode(prev)
	if err != nil {
		return nil, fmt.Errorf("encoding previous scenario: %w", err)
	}
	b, err := jsonpatch.Decode(cur)
	if err != nil {
		return nil, fmt.Errorf("encoding current scenario: %w", err)
	}
	return jsonpatch.Diff(a, b, ""), nil
}

// Changed reports whether cur differs from prev in anything but the version.
func Changed(prev, cur Scenario) bool {
	ops, err := Diff(prev, cur)
	return err != nil || len(ops) > 0
}

// Bump accepts cur as the next version of prev if it differs, otherwise it
// keeps prev.
func Bump(prev, cur Scenario) Scenario {
	if !Changed(prev, cur) {
		return prev
	}
	cur.Version = prev.Version + 1
	return cur
}
