package model

import "time"

// Profile describes the person a projection runs for.
type Profile struct {
	BirthDate           time.Time `json:"birth_date"`
	LifeExpectancyYears int       `json:"life_expectancy_years"`
}

// HorizonEnd is the date the projection stops at.
func (p Profile) HorizonEnd() time.Time {
	return p.BirthDate.AddDate(p.LifeExpectancyYears, 0, 0)
}
