// Package dashboard runs one fetch cycle: the four dashboard datasets are
// loaded concurrently and returned together, or not at all.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// StatesLoader loads the enriched top-state records.
type StatesLoader interface {
	TopStates(ctx context.Context) ([]model.StateEconomic, error)
}

// AgeLoader loads the national age/sex distribution.
type AgeLoader interface {
	AgeDistribution(ctx context.Context) ([]model.AgeBucket, error)
}

// RaceLoader loads the national race composition.
type RaceLoader interface {
	RaceComposition(ctx context.Context) ([]model.RaceCategory, error)
}

// HistoryLoader loads the historical population series.
type HistoryLoader interface {
	HistoricalPopulation(ctx context.Context) ([]model.HistoricalPoint, error)
}

// Loaders bundles the four dataset sources.
type Loaders struct {
	States  StatesLoader
	Age     AgeLoader
	Race    RaceLoader
	History HistoryLoader
}

// Orchestrator fans a fetch cycle out to its loaders.
type Orchestrator struct {
	loaders Loaders
	now     func() time.Time
}

// New returns an Orchestrator over l.
func New(l Loaders) *Orchestrator {
	return &Orchestrator{loaders: l, now: time.Now}
}

// Load runs one cycle. If any loader fails the whole cycle fails with an
// *UnavailableError and no partial dashboard is returned.
func (o *Orchestrator) Load(ctx context.Context) (*model.Dashboard, error) {
	cycleID := uuid.New().String()
	log := zap.L().With(zap.String("cycle_id", cycleID))
	start := o.now()

	var d model.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := o.loaders.States.TopStates(gctx)
		d.States = v
		return wrapLoad("states", err)
	})
	g.Go(func() error {
		v, err := o.loaders.Age.AgeDistribution(gctx)
		d.AgeDistribution = v
		return wrapLoad("age", err)
	})
	g.Go(func() error {
		v, err := o.loaders.Race.RaceComposition(gctx)
		d.RaceComposition = v
		return wrapLoad("race", err)
	})
	g.Go(func() error {
		v, err := o.loaders.History.HistoricalPopulation(gctx)
		d.PopulationTrend = v
		return wrapLoad("history", err)
	})

	if err := g.Wait(); err != nil {
		log.Error("dashboard: fetch cycle failed", zap.Error(err))
		return nil, &UnavailableError{CycleID: cycleID, Cause: err}
	}

	d.CycleID = cycleID
	d.FetchedAt = start.UTC()
	d.Normalize()

	log.Info("dashboard: fetch cycle complete",
		zap.Int("states", len(d.States)),
		zap.Int("age_buckets", len(d.AgeDistribution)),
		zap.Int("race_categories", len(d.RaceComposition)),
		zap.Int("history_points", len(d.PopulationTrend)),
		zap.Duration("elapsed", o.now().Sub(start)),
	)
	return &d, nil
}
