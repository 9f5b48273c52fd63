package census

import (
	"context"
	"fmt"

	"github.com/belugatempo-dot/census-dashboard/internal/demographics"
	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// ageVariables returns the B01001 sex-by-age estimates: 23 male bands
// (003E..025E) followed by 23 female bands (027E..049E).
func ageVariables() []string {
	vars := make([]string, 0, demographics.AgeColumns)
	for i := 3; i <= 25; i++ {
		vars = append(vars, fmt.Sprintf("B01001_%03dE", i))
	}
	for i := 27; i <= 49; i++ {
		vars = append(vars, fmt.Sprintf("B01001_%03dE", i))
	}
	return vars
}

// AgeQuery selects the national sex-by-age table.
func (c *Client) AgeQuery() Query {
	return Query{
		Endpoint: fmt.Sprintf("/%d/acs/acs5", c.opts.ACSYear),
		Get:      append([]string{"NAME"}, ageVariables()...),
		For:      Nation,
	}
}

// AgeDistribution fetches the national age/sex table and aggregates it into
// the nine dashboard buckets.
func (c *Client) AgeDistribution(ctx context.Context) ([]model.AgeBucket, error) {
	t, err := c.Table(ctx, c.AgeQuery())
	if err != nil {
		return nil, err
	}
	return demographics.AggregateAge(ParseAgeCounts(t)), nil
}

// ParseAgeCounts reads the 46 counts that follow NAME in the first row.
// A missing row yields all zeros.
func ParseAgeCounts(t *Table) []int64 {
	counts := make([]int64, demographics.AgeColumns)
	row := t.Row(0)
	for i := range counts {
		counts[i] = parseInt64Or(cell(row, i+1), 0)
	}
	return counts
}
