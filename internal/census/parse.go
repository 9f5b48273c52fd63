package census

import (
	"math"
	"strconv"
	"strings"
)

// ACS publishes annotation sentinels in place of estimates that could not be
// computed (e.g. -666666666 for a median with too few samples).
const acsSentinelCeiling = -222222222

// cell returns row[i], or "" when the row is too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseInt64Or parses a count, returning def if parsing fails. Estimates
// published as decimals ("1234.0") are truncated.
func parseInt64Or(s string, def int64) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return int64(v)
	}
	return def
}

// parseFloat64Or parses a percentage or rate, returning def if parsing fails.
func parseFloat64Or(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// estimateInt64Or is parseInt64Or for ACS estimates: annotation sentinels
// count as missing.
func estimateInt64Or(s string, def int64) int64 {
	v := parseInt64Or(s, def)
	if v <= acsSentinelCeiling {
		return def
	}
	return v
}

// estimateFloat64Or is parseFloat64Or for ACS estimates.
func estimateFloat64Or(s string, def float64) float64 {
	v := parseFloat64Or(s, def)
	if v <= acsSentinelCeiling {
		return def
	}
	return v
}
