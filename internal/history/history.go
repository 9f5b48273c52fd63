// Package history serves the national population trend. The series is a
// static reference table; it is not fetched from the live API.
package history

import (
	"context"
	_ "embed"
	"os"
	"slices"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

//go:embed series.yaml
var embeddedSeries []byte

// Static serves a fixed historical series.
type Static struct {
	path string // optional override file; empty uses the embedded series
}

// NewStatic returns a Static source. An empty path selects the embedded series.
func NewStatic(path string) *Static {
	return &Static{path: path}
}

// HistoricalPopulation returns the series sorted by year.
func (s *Static) HistoricalPopulation(_ context.Context) ([]model.HistoricalPoint, error) {
	data := embeddedSeries
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, eris.Wrapf(err, "history: read %s", s.path)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a YAML document with a top-level "history" list.
func Parse(data []byte) ([]model.HistoricalPoint, error) {
	var doc struct {
		History []model.HistoricalPoint `yaml:"history"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "history: parse series")
	}

	points := doc.History
	if points == nil {
		points = []model.HistoricalPoint{}
	}
	slices.SortFunc(points, func(a, b model.HistoricalPoint) int { return a.Year - b.Year })
	for i := 1; i < len(points); i++ {
		if points[i].Year == points[i-1].Year {
			return nil, eris.Errorf("history: duplicate year %d", points[i].Year)
		}
	}
	return points, nil
}
