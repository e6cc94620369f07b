package model

import (
	"math"
	"time"
)

type EventType string

const (
	EventContribution EventType = "contribution"
	EventPurchase     EventType = "purchase"
	EventExpense      EventType = "expense"
	EventEducation    EventType = "education"
	EventMedical      EventType = "medical"
	EventTravel       EventType = "travel"
	EventWedding      EventType = "wedding"
	EventHousing      EventType = "housing"
	EventVehicle      EventType = "vehicle"
	EventOther        EventType = "other"
)

var knownEventTypes = map[EventType]bool{
	EventContribution: true,
	EventPurchase:     true,
	EventExpense:      true,
	EventEducation:    true,
	EventMedical:      true,
	EventTravel:       true,
	EventWedding:      true,
	EventHousing:      true,
	EventVehicle:      true,
	EventOther:        true,
}

func (t EventType) Known() bool {
	return knownEventTypes[t]
}

type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func (f Frequency) Known() bool {
	return f == FrequencyOnce || f == FrequencyMonthly || f == FrequencyYearly
}

// Direction says which side of the ledger an event lands on.
type Direction int

const (
	DirectionExpense Direction = iota
	DirectionIncome
)

func (d Direction) String() string {
	if d == DirectionIncome {
		return "income"
	}
	return "expense"
}

// LifeEvent is a discrete financial impact anchored at Date.
type LifeEvent struct {
	ID        string     `json:"id,omitempty"`
	Type      EventType  `json:"type"`
	Amount    float64    `json:"amount"`
	Date      time.Time  `json:"date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Frequency Frequency  `json:"frequency"`

	// InflationIndexed is carried through but not applied to Amount.
	InflationIndexed bool `json:"inflation_indexed,omitempty"`
}

// Direction reports income for contributions and expense for every other type.
func (e LifeEvent) Direction() Direction {
	if e.Type == EventContribution {
		return DirectionIncome
	}
	return DirectionExpense
}

// SignedAmount is the amount as it enters the ledger: income keeps its sign,
// expenses always count as a positive outflow.
func (e LifeEvent) SignedAmount() float64 {
	if e.Direction() == DirectionIncome {
		return e.Amount
	}
	return math.Abs(e.Amount)
}

// LifeEventInput is the wire form of LifeEvent with ISO-8601 dates.
type LifeEventInput struct {
	ID               string  `json:"id,omitempty" toml:"id,omitempty"`
	Type             string  `json:"type" toml:"type"`
	Amount           float64 `json:"amount" toml:"amount"`
	Date             string  `json:"date" toml:"date"`
	EndDate          string  `json:"end_date,omitempty" toml:"end_date,omitempty"`
	Frequency        string  `json:"frequency" toml:"frequency"`
	InflationIndexed bool    `json:"inflation_indexed,omitempty" toml:"inflation_indexed,omitempty"`
}
