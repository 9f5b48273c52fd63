package demographics

import "github.com/belugatempo-dot/census-dashboard/internal/model"

// RacePercentages are the four published DP05 shares for one population.
type RacePercentages struct {
	Hispanic float64
	White    float64
	Black    float64
	Asian    float64
}

// RaceComposition is the normalized five-way split.
type RaceComposition struct {
	Categories []model.RaceCategory
	// Inconsistent is set when the published shares exceed 100% and the
	// "other" residual went negative. The residual is left unclamped.
	Inconsistent bool
}

// Other returns the residual share not covered by the four published ones.
func (p RacePercentages) Other() float64 {
	return 100 - (p.White + p.Hispanic + p.Black + p.Asian)
}

var raceColors = map[model.RaceKey]string{
	model.RaceWhite:    "#3b82f6",
	model.RaceHispanic: "#f59e0b",
	model.RaceBlack:    "#10b981",
	model.RaceAsian:    "#ef4444",
	model.RaceOther:    "#8b5cf6",
}

// RaceColor returns the fixed display color for a category.
func RaceColor(k model.RaceKey) string {
	return raceColors[k]
}

// NormalizeRace derives the "other" residual and returns the five categories
// in display order: white, hispanic, black, asian, other.
func NormalizeRace(p RacePercentages) RaceComposition {
	other := p.Other()
	cats := []model.RaceCategory{
		{Key: model.RaceWhite, Value: Round1(p.White)},
		{Key: model.RaceHispanic, Value: Round1(p.Hispanic)},
		{Key: model.RaceBlack, Value: Round1(p.Black)},
		{Key: model.RaceAsian, Value: Round1(p.Asian)},
		{Key: model.RaceOther, Value: Round1(other)},
	}
	for i := range cats {
		cats[i].Color = raceColors[cats[i].Key]
	}
	return RaceComposition{
		Categories:   cats,
		Inconsistent: other < 0,
	}
}
