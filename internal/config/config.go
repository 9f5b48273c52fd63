package config

import (
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Census    CensusConfig    `yaml:"census" mapstructure:"census"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Prefs     PrefsConfig     `yaml:"prefs" mapstructure:"prefs"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// CensusConfig configures access to the Census Data API.
type CensusConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	APIKey      string  `yaml:"api_key" mapstructure:"api_key"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	PEPVintage  int     `yaml:"pep_vintage" mapstructure:"pep_vintage"`
	ACSYear     int     `yaml:"acs_year" mapstructure:"acs_year"`
}

// DashboardConfig configures the fetch cycle.
type DashboardConfig struct {
	TopStates   int    `yaml:"top_states" mapstructure:"top_states"`
	HistoryFile string `yaml:"history_file" mapstructure:"history_file"`
}

// PrefsConfig configures where the language preference is kept.
type PrefsConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
	DSN    string `yaml:"dsn" mapstructure:"dsn"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("census.api_key", "DASHBOARD_CENSUS_API_KEY", "CENSUS_API_KEY"); err != nil {
		return nil, eris.Wrap(err, "config: bind census api key")
	}

	// Defaults
	v.SetDefault("census.base_url", "https://api.census.gov/data")
	v.SetDefault("census.timeout_secs", 30)
	v.SetDefault("census.rate_per_sec", 10)
	v.SetDefault("census.user_agent", "census-dashboard/1.0")
	v.SetDefault("census.pep_vintage", 2023)
	v.SetDefault("census.acs_year", 2022)
	v.SetDefault("dashboard.top_states", 10)
	v.SetDefault("dashboard.history_file", "")
	v.SetDefault("prefs.driver", "sqlite")
	v.SetDefault("prefs.dsn", "census-dashboard.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command needs. mode is one of "fetch",
// "serve" or "lang".
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "fetch", "serve":
		errs = append(errs, c.validateCensus()...)
		if c.Dashboard.TopStates < 1 {
			errs = append(errs, "dashboard.top_states must be >= 1")
		}
		if mode == "serve" && (c.Server.Port <= 0 || c.Server.Port > 65535) {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
	case "lang":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}
	errs = append(errs, c.validatePrefs()...)

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) validateCensus() []string {
	var errs []string
	if u, err := url.Parse(c.Census.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, "census.base_url must be an absolute URL")
	}
	if c.Census.TimeoutSecs <= 0 {
		errs = append(errs, "census.timeout_secs must be > 0")
	}
	if c.Census.RatePerSec < 0 {
		errs = append(errs, "census.rate_per_sec must be >= 0")
	}
	if c.Census.PEPVintage <= 0 || c.Census.ACSYear <= 0 {
		errs = append(errs, "census.pep_vintage and census.acs_year must be > 0")
	}
	return errs
}

func (c *Config) validatePrefs() []string {
	switch c.Prefs.Driver {
	case "memory":
		return nil
	case "sqlite":
		if c.Prefs.DSN == "" {
			return []string{"prefs.dsn is required for the sqlite driver"}
		}
		return nil
	default:
		return []string{"prefs.driver must be sqlite or memory"}
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
