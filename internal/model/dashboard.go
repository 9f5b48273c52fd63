package model

import "time"

// Dashboard is the view-model produced by one fetch cycle. On success every
// slice is non-nil so it serializes as an array.
type Dashboard struct {
	CycleID         string            `json:"cycle_id"`
	FetchedAt       time.Time         `json:"fetched_at"`
	States          []StateEconomic   `json:"states"`
	AgeDistribution []AgeBucket       `json:"age_distribution"`
	RaceComposition []RaceCategory    `json:"race_composition"`
	PopulationTrend []HistoricalPoint `json:"population_trend"`
}

// Normalize replaces nil slices with empty ones.
func (d *Dashboard) Normalize() {
	if d.States == nil {
		d.States = []StateEconomic{}
	}
	if d.AgeDistribution == nil {
		d.AgeDistribution = []AgeBucket{}
	}
	if d.RaceComposition == nil {
		d.RaceComposition = []RaceCategory{}
	}
	if d.PopulationTrend == nil {
		d.PopulationTrend = []HistoricalPoint{}
	}
}
