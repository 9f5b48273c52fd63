package demographics

import (
	"github.com/rotisserie/eris"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// AgeColumnsPerSex is the number of B01001 age bands per sex
// (B01001_003E..025E for males, B01001_027E..049E for females).
const AgeColumnsPerSex = 23

// AgeColumns is the width of a full age/sex row: males then females.
const AgeColumns = 2 * AgeColumnsPerSex

const personsPerMillion = 1_000_000

type ageBucket struct {
	label string
	cols  []int // indexes into one sex's 23 columns
}

// ageBuckets maps B01001 bands onto the dashboard's nine age ranges.
// Column order: 0-4, 5-9, 10-14, 15-17, 18-19, 20, 21, 22-24, 25-29, 30-34,
// 35-39, 40-44, 45-49, 50-54, 55-59, 60-61, 62-64, 65-66, 67-69, 70-74,
// 75-79, 80-84, 85+.
var ageBuckets = []ageBucket{
	{label: "0-4", cols: []int{0}},
	{label: "5-17", cols: []int{1, 2, 3}},
	{label: "18-24", cols: []int{4, 5, 6, 7}},
	{label: "25-34", cols: []int{8, 9}},
	{label: "35-44", cols: []int{10, 11}},
	{label: "45-54", cols: []int{12, 13}},
	{label: "55-64", cols: []int{14, 15, 16}},
	{label: "65-74", cols: []int{17, 18, 19}},
	{label: "75+", cols: []int{20, 21, 22}},
}

// AgeLabels returns the bucket labels in output order.
func AgeLabels() []string {
	labels := make([]string, len(ageBuckets))
	for i, b := range ageBuckets {
		labels[i] = b.label
	}
	return labels
}

// ValidateAgeBuckets checks the bucket table once at startup: every column
// index in range, no column in two buckets, no column left out, no
// duplicate labels.
func ValidateAgeBuckets() error {
	return validateAgeBuckets(ageBuckets)
}

func validateAgeBuckets(buckets []ageBucket) error {
	owner := make(map[int]string, AgeColumnsPerSex)
	labels := make(map[string]bool, len(buckets))
	for _, b := range buckets {
		if labels[b.label] {
			return eris.Errorf("demographics: duplicate age bucket %q", b.label)
		}
		labels[b.label] = true
		if len(b.cols) == 0 {
			return eris.Errorf("demographics: age bucket %q has no columns", b.label)
		}
		for _, c := range b.cols {
			if c < 0 || c >= AgeColumnsPerSex {
				return eris.Errorf("demographics: age bucket %q column %d out of range", b.label, c)
			}
			if prev, ok := owner[c]; ok {
				return eris.Errorf("demographics: column %d mapped to both %q and %q", c, prev, b.label)
			}
			owner[c] = b.label
		}
	}
	if len(owner) != AgeColumnsPerSex {
		return eris.Errorf("demographics: %d of %d age columns mapped", len(owner), AgeColumnsPerSex)
	}
	return nil
}

// AggregateAge folds one row of 46 person counts (23 male bands followed by
// 23 female bands) into the nine dashboard age buckets, in millions.
//
// Male and female sums are rounded to one decimal independently; the total
// is the rounded sum of those rounded figures. Missing or short rows count
// as zero.
func AggregateAge(counts []int64) []model.AgeBucket {
	out := make([]model.AgeBucket, 0, len(ageBuckets))
	for _, b := range ageBuckets {
		var male, female int64
		for _, c := range b.cols {
			male += countAt(counts, c)
			female += countAt(counts, c+AgeColumnsPerSex)
		}
		m := Round1(float64(male) / personsPerMillion)
		f := Round1(float64(female) / personsPerMillion)
		out = append(out, model.AgeBucket{
			Age:    b.label,
			Male:   m,
			Female: f,
			Total:  Round1(m + f),
		})
	}
	return out
}

func countAt(counts []int64, i int) int64 {
	if i < 0 || i >= len(counts) {
		return 0
	}
	return counts[i]
}
