// Package census is a thin client for the Census Bureau data API
// (https://api.census.gov/data). Every dataset endpoint answers with a JSON
// table shaped [headerRow, ...dataRows]; the parsers here read columns by
// fixed position and degrade non-numeric cells to zero.
package census
