package model

// StatePopulation is one row of the PEP state population dataset.
type StatePopulation struct {
	State      string `json:"state"`
	Population int64  `json:"population"`
	StateCode  string `json:"state_code"` // 2-digit FIPS code, e.g. "06"
}

// EconomicDetail holds the ACS 5-year economic figures for one state.
type EconomicDetail struct {
	MedianIncome int64   `json:"median_income"` // B19013_001E, USD
	Unemployment float64 `json:"unemployment"`  // DP03_0005PE, percent
}

// StateEconomic is a ranked state with its ACS economic figures merged in.
type StateEconomic struct {
	State        string  `json:"state"`
	Abbr         string  `json:"abbr"`
	Population   int64   `json:"population"`
	Growth       float64 `json:"growth"`
	MedianIncome int64   `json:"median_income"`
	Unemployment float64 `json:"unemployment"`
}

// AgeBucket is one age range of the population pyramid, in millions.
type AgeBucket struct {
	Age    string  `json:"age"`
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
	Total  float64 `json:"total"`
}

// RaceKey identifies a race/ethnicity category. Keys double as translation keys.
type RaceKey string

const (
	RaceWhite    RaceKey = "white"
	RaceHispanic RaceKey = "hispanic"
	RaceBlack    RaceKey = "black"
	RaceAsian    RaceKey = "asian"
	RaceOther    RaceKey = "other"
)

// RaceCategory is one slice of the race composition chart.
type RaceCategory struct {
	Key   RaceKey `json:"key"`
	Value float64 `json:"value"` // percent, 1 decimal
	Color string  `json:"color"`
}

// HistoricalPoint is one point of the national population trend.
type HistoricalPoint struct {
	Year       int     `json:"year" yaml:"year"`
	Population float64 `json:"population" yaml:"population"` // millions
	Urban      float64 `json:"urban" yaml:"urban"`           // percent urban
}
