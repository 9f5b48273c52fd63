package dashboard

import (
	"context"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

type fakeStates struct {
	v   []model.StateEconomic
	err error
}

func (f fakeStates) TopStates(context.Context) ([]model.StateEconomic, error) { return f.v, f.err }

type fakeAge struct {
	v   []model.AgeBucket
	err error
}

func (f fakeAge) AgeDistribution(context.Context) ([]model.AgeBucket, error) { return f.v, f.err }

type fakeRace struct {
	v   []model.RaceCategory
	err error
}

func (f fakeRace) RaceComposition(context.Context) ([]model.RaceCategory, error) { return f.v, f.err }

// blockingHistory waits for cancellation before returning.
type blockingHistory struct{}

func (blockingHistory) HistoricalPopulation(ctx context.Context) ([]model.HistoricalPoint, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type fakeHistory struct {
	v   []model.HistoricalPoint
	err error
}

func (f fakeHistory) HistoricalPopulation(context.Context) ([]model.HistoricalPoint, error) {
	return f.v, f.err
}

func okLoaders() Loaders {
	return Loaders{
		States: fakeStates{v: []model.StateEconomic{{State: "California", Abbr: "CA", Population: 39538223}}},
		Age:    fakeAge{v: []model.AgeBucket{{Age: "0-4", Male: 10, Female: 9.6, Total: 19.6}}},
		Race:   fakeRace{v: []model.RaceCategory{{Key: model.RaceWhite, Value: 57.8}}},
		History: fakeHistory{v: []model.HistoricalPoint{
			{Year: 1950, Population: 151.3, Urban: 64},
		}},
	}
}
