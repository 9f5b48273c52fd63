package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/belugatempo-dot/census-dashboard/internal/config"
	"github.com/belugatempo-dot/census-dashboard/internal/i18n"
	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// testConfig returns a validated-looking config pointing at baseURL with an
// SQLite preference store in a temp dir.
func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.Census.BaseURL = baseURL
	c.Census.TimeoutSecs = 5
	c.Census.RatePerSec = 100
	c.Census.UserAgent = "census-dashboard-test"
	c.Census.PEPVintage = 2023
	c.Census.ACSYear = 2022
	c.Dashboard.TopStates = 10
	c.Prefs.Driver = "sqlite"
	c.Prefs.DSN = filepath.Join(t.TempDir(), "prefs.db")
	c.Server.Port = 8080
	c.Server.AllowedOrigins = []string{"*"}
	return c
}

// useConfig installs c as the package config for the duration of the test.
func useConfig(t *testing.T, c *config.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func writeTable(w http.ResponseWriter, rows [][]string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

// fakeCensusServer serves canned Census API tables. ACS lookups for any code
// listed in failStates return 500.
func fakeCensusServer(t *testing.T, failStates ...string) *httptest.Server {
	t.Helper()
	failing := make(map[string]bool)
	for _, s := range failStates {
		failing["state:"+s] = true
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case strings.HasSuffix(r.URL.Path, "/pep/population"):
			writeTable(w, [][]string{
				{"POP_2023", "NAME", "state"},
				{"21538187", "Florida", "12"},
				{"39538223", "California", "06"},
				{"29145505", "Texas", "48"},
			})
		case strings.HasSuffix(r.URL.Path, "/acs/acs5/profile"):
			writeTable(w, [][]string{
				{"NAME", "DP05_0077PE", "DP05_0071PE", "DP05_0078PE", "DP05_0080PE", "us"},
				{"United States", "19.1", "57.8", "12.4", "6.2", "1"},
			})
		case strings.HasSuffix(r.URL.Path, "/acs/acs5") && q.Get("for") == "us:1":
			header := append([]string{"NAME"}, strings.Split(q.Get("get"), ",")[1:]...)
			row := []string{"United States"}
			for _i := 0; _i < 46; _i++ {
				row = append(row, "1000000")
			}
			writeTable(w, [][]string{append(header, "us"), append(row, "1")})
		case strings.HasSuffix(r.URL.Path, "/acs/acs5"):
			geo := q.Get("for")
			if failing[geo] {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			code := strings.TrimPrefix(geo, "state:")
			writeTable(w, [][]string{
				{"NAME", "B19013_001E", "DP03_0005PE", "state"},
				{"State " + code, "91905", "6.5", code},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// fakeLoader is a dashboardLoader returning a fixed result.
type fakeLoader struct {
	d   *model.Dashboard
	err error
}

func (f *fakeLoader) Load(context.Context) (*model.Dashboard, error) {
	return f.d, f.err
}

// fakeLanguage is an in-memory languageStore.
type fakeLanguage struct {
	mu   sync.Mutex
	lang i18n.Language
	err  error
}

func (f *fakeLanguage) Get(context.Context) (i18n.Language, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if f.lang == "" {
		return i18n.English, nil
	}
	return f.lang, nil
}

func (f *fakeLanguage) Set(_ context.Context, l i18n.Language) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.lang = l
	return nil
}

func (f *fakeLanguage) Toggle(ctx context.Context) (i18n.Language, error) {
	cur, err := f.Get(ctx)
	if err != nil {
		return "", err
	}
	next := cur.Toggle()
	return next, f.Set(ctx, next)
}

func sampleDashboard() *model.Dashboard {
	return &model.Dashboard{
		CycleID: "cycle-1",
		States: []model.StateEconomic{{
			State: "California", Abbr: "CA", Population: 39538223, Growth: 0.5,
			MedianIncome: 91905, Unemployment: 6.5,
		}},
		AgeDistribution: []model.AgeBucket{{Age: "0-4", Male: 10.1, Female: 9.6, Total: 19.7}},
		RaceComposition: []model.RaceCategory{{Key: model.RaceWhite, Value: 57.8, Color: "#3b82f6"}},
		PopulationTrend: []model.HistoricalPoint{{Year: 2020, Population: 331.4, Urban: 80}},
	}
}
