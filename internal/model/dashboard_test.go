package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_NormalizeEmptyArrays(t *testing.T) {
	d := &Dashboard{CycleID: "abc"}
	d.Normalize()

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"states", "age_distribution", "race_composition", "population_trend"} {
		assert.Equal(t, []any{}, raw[key], key)
	}
}

func TestDashboard_NormalizeKeepsData(t *testing.T) {
	d := &Dashboard{
		States: []StateEconomic{{State: "Texas", Abbr: "TX"}},
	}
	d.Normalize()
	assert.Len(t, d.States, 1)
	assert.NotNil(t, d.AgeDistribution)
}
