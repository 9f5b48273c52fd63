package census

import (
	"context"
	"fmt"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// PopulationQuery selects POP_<vintage> and NAME for every state from the
// Population Estimates Program.
func (c *Client) PopulationQuery() Query {
	return Query{
		Endpoint: fmt.Sprintf("/%d/pep/population", c.opts.PEPVintage),
		Get:      []string{fmt.Sprintf("POP_%d", c.opts.PEPVintage), "NAME"},
		For:      AllStates,
	}
}

// StatePopulation fetches the population estimate for every state.
func (c *Client) StatePopulation(ctx context.Context) ([]model.StatePopulation, error) {
	t, err := c.Table(ctx, c.PopulationQuery())
	if err != nil {
		return nil, err
	}
	return ParseStatePopulation(t), nil
}

// ParseStatePopulation reads rows shaped [POP, NAME, state].
func ParseStatePopulation(t *Table) []model.StatePopulation {
	out := make([]model.StatePopulation, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		out = append(out, model.StatePopulation{
			Population: parseInt64Or(cell(row, 0), 0),
			State:      cell(row, 1),
			StateCode:  cell(row, 2),
		})
	}
	return out
}
