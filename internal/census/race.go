package census

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/belugatempo-dot/census-dashboard/internal/demographics"
	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// DP05 demographic profile percentages, in response column order after NAME.
var raceVariables = []string{
	"DP05_0077PE", // hispanic
	"DP05_0071PE", // white
	"DP05_0078PE", // black
	"DP05_0080PE", // asian
}

// RaceQuery selects the national race/ethnicity shares.
func (c *Client) RaceQuery() Query {
	return Query{
		Endpoint: fmt.Sprintf("/%d/acs/acs5/profile", c.opts.ACSYear),
		Get:      append([]string{"NAME"}, raceVariables...),
		For:      Nation,
	}
}

// RaceComposition fetches the national shares and normalizes them into five
// categories. A negative "other" residual is kept and logged.
func (c *Client) RaceComposition(ctx context.Context) ([]model.RaceCategory, error) {
	t, err := c.Table(ctx, c.RaceQuery())
	if err != nil {
		return nil, err
	}
	rc := demographics.NormalizeRace(ParseRacePercentages(t))
	if rc.Inconsistent {
		zap.L().Warn("race shares exceed 100%, residual category is negative",
			zap.Float64("other", rc.Categories[len(rc.Categories)-1].Value),
		)
	}
	return rc.Categories, nil
}

// ParseRacePercentages reads the first row shaped
// [NAME, hispanic, white, black, asian, us].
func ParseRacePercentages(t *Table) demographics.RacePercentages {
	row := t.Row(0)
	return demographics.RacePercentages{
		Hispanic: parseFloat64Or(cell(row, 1), 0),
		White:    parseFloat64Or(cell(row, 2), 0),
		Black:    parseFloat64Or(cell(row, 3), 0),
		Asian:    parseFloat64Or(cell(row, 4), 0),
	}
}
