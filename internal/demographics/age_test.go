package demographics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformRow(v int64) []int64 {
	row := make([]int64, AgeColumns)
	for i := range row {
		row[i] = v
	}
	return row
}

func TestValidateAgeBuckets(t *testing.T) {
	require.NoError(t, ValidateAgeBuckets())
}

func TestValidateAgeBuckets_Rejects(t *testing.T) {
	full := func() []ageBucket {
		out := make([]ageBucket, len(ageBuckets))
		copy(out, ageBuckets)
		return out
	}

	t.Run("overlap", func(t *testing.T) {
		b := full()
		b[0] = ageBucket{label: "0-4", cols: []int{0, 1}}
		err := validateAgeBuckets(b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mapped to both")
	})

	t.Run("out of range", func(t *testing.T) {
		b := full()
		b[8] = ageBucket{label: "75+", cols: []int{20, 21, 22, 23}}
		err := validateAgeBuckets(b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("gap", func(t *testing.T) {
		b := full()
		b[8] = ageBucket{label: "75+", cols: []int{20, 21}}
		err := validateAgeBuckets(b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "22 of 23")
	})

	t.Run("duplicate label", func(t *testing.T) {
		b := full()
		b[1].label = "0-4"
		err := validateAgeBuckets(b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate age bucket")
	})
}

func TestAggregateAge_LabelsAndOrder(t *testing.T) {
	buckets := AggregateAge(uniformRow(1_000_000))
	require.Len(t, buckets, 9)

	var got []string
	for _, b := range buckets {
		got = append(got, b.Age)
	}
	assert.Equal(t, []string{"0-4", "5-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65-74", "75+"}, got)
	assert.Equal(t, AgeLabels(), got)
}

func TestAggregateAge_Uniform(t *testing.T) {
	buckets := AggregateAge(uniformRow(1_000_000))

	// each bucket sums one million per mapped column
	want := []float64{1, 3, 4, 2, 2, 2, 3, 3, 3}
	for i, b := range buckets {
		assert.Equal(t, want[i], b.Male, b.Age)
		assert.Equal(t, want[i], b.Female, b.Age)
		assert.Equal(t, 2*want[i], b.Total, b.Age)
	}
}

func TestAggregateAge_MaleFemaleSplit(t *testing.T) {
	row := make([]int64, AgeColumns)
	// 18-24 male bands
	row[4], row[5], row[6], row[7] = 4_400_000, 2_200_000, 2_250_000, 6_520_000
	// 18-24 female bands
	row[27], row[28], row[29], row[30] = 4_200_000, 2_100_000, 2_150_000, 6_230_000

	buckets := AggregateAge(row)
	b := buckets[2]
	assert.Equal(t, "18-24", b.Age)
	assert.Equal(t, 15.4, b.Male)
	assert.Equal(t, 14.7, b.Female)
	assert.Equal(t, 30.1, b.Total)
	assert.Equal(t, 0.0, buckets[0].Male)
}

func TestAggregateAge_TotalIsSumOfRoundedParts(t *testing.T) {
	row := make([]int64, AgeColumns)
	// 0-4: male 1.04M -> 1.0, female 1.04M -> 1.0; unrounded sum 2.08 -> 2.1,
	// rounded parts sum to 2.0.
	row[0] = 1_040_000
	row[AgeColumnsPerSex] = 1_040_000

	b := AggregateAge(row)[0]
	assert.Equal(t, 1.0, b.Male)
	assert.Equal(t, 1.0, b.Female)
	assert.Equal(t, 2.0, b.Total)
}

func TestAggregateAge_TotalInvariant(t *testing.T) {
	row := make([]int64, AgeColumns)
	for i := range row {
		row[i] = int64(1_234_567 + i*98_765)
	}
	for _, b := range AggregateAge(row) {
		assert.Equal(t, Round1(b.Male+b.Female), b.Total, b.Age)
	}
}

func TestAggregateAge_EmptyAndShort(t *testing.T) {
	for name, row := range map[string][]int64{
		"nil":   nil,
		"zeros": make([]int64, AgeColumns),
		"short": {500_000},
	} {
		t.Run(name, func(t *testing.T) {
			buckets := AggregateAge(row)
			require.Len(t, buckets, 9)
			for _, b := range buckets[1:] {
				assert.Zero(t, b.Male)
				assert.Zero(t, b.Female)
				assert.Zero(t, b.Total)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.5, Round1(4.4999999999))
	assert.Equal(t, 0.1, Round1(0.05))
	assert.Equal(t, -0.1, Round1(-0.05))
	assert.Equal(t, 39.5, Round1(39.538223))
}
