package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/belugatempo-dot/census-dashboard/internal/census"
	"github.com/belugatempo-dot/census-dashboard/internal/config"
	"github.com/belugatempo-dot/census-dashboard/internal/dashboard"
	"github.com/belugatempo-dot/census-dashboard/internal/enrich"
	"github.com/belugatempo-dot/census-dashboard/internal/fetcher"
	"github.com/belugatempo-dot/census-dashboard/internal/history"
	"github.com/belugatempo-dot/census-dashboard/internal/i18n"
	"github.com/belugatempo-dot/census-dashboard/internal/prefs"
)

// dashboardEnv holds the orchestrator and the preference cell needed by the
// fetch and serve commands.
type dashboardEnv struct {
	Dashboard *dashboard.Orchestrator
	Prefs     *prefs.Preference
	store     prefs.Store
}

// Close releases resources held by the environment.
func (e *dashboardEnv) Close() {
	if e.store != nil {
		_ = e.store.Close()
	}
}

// initDashboard validates config for mode and wires the fetch stack.
// topN <= 0 uses dashboard.top_states. Callers should defer env.Close().
func initDashboard(ctx context.Context, mode string, topN int) (*dashboardEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Census.APIKey == "" {
		zap.L().Info("CENSUS_API_KEY not set, using the unauthenticated quota")
	}

	return &dashboardEnv{
		Dashboard: newOrchestrator(cfg, topN),
		Prefs:     prefs.New(st),
		store:     st,
	}, nil
}

// newOrchestrator builds the fetcher, Census client and loaders from c.
func newOrchestrator(c *config.Config, topN int) *dashboard.Orchestrator {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:    c.Census.UserAgent,
		Timeout:      time.Duration(c.Census.TimeoutSecs) * time.Second,
		RateLimiters: fetcher.DefaultRateLimiters(c.Census.RatePerSec),
	})
	client := census.NewClient(f, census.Options{
		BaseURL:    c.Census.BaseURL,
		APIKey:     c.Census.APIKey,
		PEPVintage: c.Census.PEPVintage,
		ACSYear:    c.Census.ACSYear,
	})
	if topN <= 0 {
		topN = c.Dashboard.TopStates
	}
	return dashboard.New(dashboard.Loaders{
		States:  enrich.New(client, topN),
		Age:     client,
		Race:    client,
		History: history.NewStatic(c.Dashboard.HistoryFile),
	})
}

// initStore opens the preference store selected by prefs.driver.
func initStore(ctx context.Context) (prefs.Store, error) {
	switch cfg.Prefs.Driver {
	case "memory":
		return prefs.NewMemory(), nil
	case "sqlite":
		st, err := prefs.NewSQLite(cfg.Prefs.DSN)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			_ = st.Close()
			return nil, eris.Wrap(err, "migrate preferences")
		}
		return st, nil
	default:
		return nil, eris.Errorf("unsupported prefs driver: %s", cfg.Prefs.Driver)
	}
}

// resolveLanguage returns the override when one is given, otherwise the
// stored preference.
func resolveLanguage(ctx context.Context, p *prefs.Preference, override string) (i18n.Language, error) {
	if override != "" {
		return i18n.ParseLanguage(override)
	}
	return p.Get(ctx)
}
