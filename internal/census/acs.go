package census

import (
	"context"
	"fmt"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// ACS 5-year variables for the per-state economic lookup.
const (
	varMedianIncome = "B19013_001E" // median household income, USD
	varUnemployment = "DP03_0005PE" // unemployment rate, percent
)

// EconomicQuery selects income and unemployment for one state.
func (c *Client) EconomicQuery(stateCode string) Query {
	return Query{
		Endpoint: fmt.Sprintf("/%d/acs/acs5", c.opts.ACSYear),
		Get:      []string{"NAME", varMedianIncome, varUnemployment},
		For:      StateFilter(stateCode),
	}
}

// EconomicDetail fetches the ACS economic figures for one state. It returns
// nil, nil when the API answers with no data rows.
func (c *Client) EconomicDetail(ctx context.Context, stateCode string) (*model.EconomicDetail, error) {
	t, err := c.Table(ctx, c.EconomicQuery(stateCode))
	if err != nil {
		return nil, err
	}
	return ParseEconomicDetail(t), nil
}

// ParseEconomicDetail reads the first row shaped [NAME, income, unemployment, state].
func ParseEconomicDetail(t *Table) *model.EconomicDetail {
	if t.Len() == 0 {
		return nil
	}
	row := t.Row(0)
	return &model.EconomicDetail{
		MedianIncome: estimateInt64Or(cell(row, 1), 0),
		Unemployment: estimateFloat64Or(cell(row, 2), 0),
	}
}
