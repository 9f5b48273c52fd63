package enrich

import (
	"strings"

	"github.com/rotisserie/eris"
)

// stateAbbreviations maps full state names, as returned in the NAME column,
// to USPS codes.
var stateAbbreviations = map[string]string{
	"Alabama":              "AL",
	"Alaska":               "AK",
	"Arizona":              "AZ",
	"Arkansas":             "AR",
	"California":           "CA",
	"Colorado":             "CO",
	"Connecticut":          "CT",
	"Delaware":             "DE",
	"District of Columbia": "DC",
	"Florida":              "FL",
	"Georgia":              "GA",
	"Hawaii":               "HI",
	"Idaho":                "ID",
	"Illinois":             "IL",
	"Indiana":              "IN",
	"Iowa":                 "IA",
	"Kansas":               "KS",
	"Kentucky":             "KY",
	"Louisiana":            "LA",
	"Maine":                "ME",
	"Maryland":             "MD",
	"Massachusetts":        "MA",
	"Michigan":             "MI",
	"Minnesota":            "MN",
	"Mississippi":          "MS",
	"Missouri":             "MO",
	"Montana":              "MT",
	"Nebraska":             "NE",
	"Nevada":               "NV",
	"New Hampshire":        "NH",
	"New Jersey":           "NJ",
	"New Mexico":           "NM",
	"New York":             "NY",
	"North Carolina":       "NC",
	"North Dakota":         "ND",
	"Ohio":                 "OH",
	"Oklahoma":             "OK",
	"Oregon":               "OR",
	"Pennsylvania":         "PA",
	"Puerto Rico":          "PR",
	"Rhode Island":         "RI",
	"South Carolina":       "SC",
	"South Dakota":         "SD",
	"Tennessee":            "TN",
	"Texas":                "TX",
	"Utah":                 "UT",
	"Vermont":              "VT",
	"Virginia":             "VA",
	"Washington":           "WA",
	"West Virginia":        "WV",
	"Wisconsin":            "WI",
	"Wyoming":              "WY",
}

// Abbreviation returns the USPS code for a state name. Names missing from
// the table fall back to their first two characters, upper-cased.
func Abbreviation(name string) string {
	if abbr, ok := stateAbbreviations[name]; ok {
		return abbr
	}
	r := []rune(strings.TrimSpace(name))
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// ValidateAbbreviations checks the table once at startup: every code is two
// upper-case letters and no code is used twice.
func ValidateAbbreviations() error {
	return validateAbbreviations(stateAbbreviations)
}

func validateAbbreviations(table map[string]string) error {
	seen := make(map[string]string, len(table))
	for name, abbr := range table {
		if strings.TrimSpace(name) == "" {
			return eris.New("enrich: empty state name in abbreviation table")
		}
		if len(abbr) != 2 || strings.ToUpper(abbr) != abbr || !isLetters(abbr) {
			return eris.Errorf("enrich: invalid abbreviation %q for %s", abbr, name)
		}
		if prev, ok := seen[abbr]; ok {
			return eris.Errorf("enrich: abbreviation %s used by both %s and %s", abbr, prev, name)
		}
		seen[abbr] = name
	}
	return nil
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
