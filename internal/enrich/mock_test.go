package enrich

import (
	"context"
	"sync"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// fakeSource implements Source for testing.
type fakeSource struct {
	population    []model.StatePopulation
	populationErr error
	details       map[string]*model.EconomicDetail
	detailErrs    map[string]error

	mu      sync.Mutex
	lookups []string
}

func (f *fakeSource) StatePopulation(_ context.Context) ([]model.StatePopulation, error) {
	if f.populationErr != nil {
		return nil, f.populationErr
	}
	return f.population, nil
}

func (f *fakeSource) EconomicDetail(_ context.Context, code string) (*model.EconomicDetail, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, code)
	f.mu.Unlock()

	if err := f.detailErrs[code]; err != nil {
		return nil, err
	}
	return f.details[code], nil
}
