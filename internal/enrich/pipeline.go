// Package enrich builds the ranked state table: the PEP population list
// joined with per-state ACS economic lookups.
package enrich

import (
	"cmp"
	"context"
	"slices"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// DefaultTopN is the number of states kept after ranking by population.
const DefaultTopN = 10

// GrowthPlaceholder is reported as every state's growth rate. No
// year-over-year source is wired yet; the value is not derived from data.
const GrowthPlaceholder = 0.5

// Source provides the two datasets the pipeline joins.
type Source interface {
	StatePopulation(ctx context.Context) ([]model.StatePopulation, error)
	EconomicDetail(ctx context.Context, stateCode string) (*model.EconomicDetail, error)
}

// Pipeline ranks states by population and enriches the top N.
type Pipeline struct {
	src  Source
	topN int
}

// New creates a Pipeline. topN <= 0 uses DefaultTopN.
func New(src Source, topN int) *Pipeline {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Pipeline{src: src, topN: topN}
}

// TopStates fetches the population list, keeps the topN most populous states
// and merges in their ACS figures. A failed population fetch fails the call;
// a failed or empty ACS lookup only zeroes that state's income and
// unemployment.
func (p *Pipeline) TopStates(ctx context.Context) ([]model.StateEconomic, error) {
	pop, err := p.src.StatePopulation(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: state population")
	}

	top := Rank(pop, p.topN)
	details := p.lookupAll(ctx, top)

	out := make([]model.StateEconomic, len(top))
	for i, st := range top {
		out[i] = merge(st, details[i])
	}
	return out, nil
}

// Rank returns the n most populous states, descending. Ties keep input order.
func Rank(states []model.StatePopulation, n int) []model.StatePopulation {
	ranked := slices.Clone(states)
	slices.SortStableFunc(ranked, func(a, b model.StatePopulation) int {
		return cmp.Compare(b.Population, a.Population)
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// lookupAll runs one ACS lookup per state concurrently. Failures are
// recorded per item and never cancel sibling lookups.
func (p *Pipeline) lookupAll(ctx context.Context, states []model.StatePopulation) []Result[model.EconomicDetail] {
	results := make([]Result[model.EconomicDetail], len(states))

	var g errgroup.Group
	for i, st := range states {
		i, st := i, st
		g.Go(func() error {
			results[i] = p.lookup(ctx, st)
			return nil // don't abort batch on individual failure
		})
	}
	_ = g.Wait()

	return results
}

func (p *Pipeline) lookup(ctx context.Context, st model.StatePopulation) Result[model.EconomicDetail] {
	log := zap.L().With(zap.String("state", st.State), zap.String("state_code", st.StateCode))

	d, err := p.src.EconomicDetail(ctx, st.StateCode)
	if err != nil {
		log.Warn("acs lookup failed, using zero income and unemployment", zap.Error(err))
		return Result[model.EconomicDetail]{Err: err}
	}
	if d == nil {
		log.Warn("acs lookup returned no rows, using zero income and unemployment")
		return Result[model.EconomicDetail]{Err: errNoDetail}
	}
	return Result[model.EconomicDetail]{Value: *d}
}

var errNoDetail = eris.New("enrich: no ACS rows")

func merge(st model.StatePopulation, r Result[model.EconomicDetail]) model.StateEconomic {
	d := r.OrDefault(model.EconomicDetail{})
	return model.StateEconomic{
		State:        st.State,
		Abbr:         Abbreviation(st.State),
		Population:   st.Population,
		Growth:       GrowthPlaceholder,
		MedianIncome: d.MedianIncome,
		Unemployment: d.Unemployment,
	}
}
