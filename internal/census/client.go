package census

import (
	"context"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/belugatempo-dot/census-dashboard/internal/fetcher"
)

// DefaultBaseURL is the public Census data API root.
const DefaultBaseURL = "https://api.census.gov/data"

// Geography filters.
const (
	AllStates = "state:*"
	Nation    = "us:1"
)

// StateFilter returns the geography filter for one state FIPS code.
func StateFilter(code string) string {
	return "state:" + code
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	APIKey     string // optional; unauthenticated calls have a lower quota
	PEPVintage int    // population estimates vintage, e.g. 2023
	ACSYear    int    // ACS 5-year release, e.g. 2022
}

// Query selects variables from one dataset endpoint.
type Query struct {
	Endpoint string   // path below the base URL, e.g. "/2022/acs/acs5"
	Get      []string // requested variables
	For      string   // geography filter
}

// Client fetches and parses Census API tables.
type Client struct {
	f    fetcher.Fetcher
	opts Options
}

// NewClient creates a Client that downloads through f.
func NewClient(f fetcher.Fetcher, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.PEPVintage == 0 {
		opts.PEPVintage = 2023
	}
	if opts.ACSYear == 0 {
		opts.ACSYear = 2022
	}
	return &Client{f: f, opts: opts}
}

// URL builds the request URL for q. The key parameter is appended only when
// an API key is configured.
func (c *Client) URL(q Query) (string, error) {
	u, err := url.Parse(c.opts.BaseURL + q.Endpoint)
	if err != nil {
		return "", eris.Wrapf(err, "census: parse url %s", q.Endpoint)
	}
	params := u.Query()
	params.Set("get", strings.Join(q.Get, ","))
	params.Set("for", q.For)
	if c.opts.APIKey != "" {
		params.Set("key", c.opts.APIKey)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// Table downloads and decodes the table selected by q.
func (c *Client) Table(ctx context.Context, q Query) (*Table, error) {
	rawURL, err := c.URL(q)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("census request",
		zap.String("endpoint", q.Endpoint),
		zap.String("for", q.For),
		zap.Int("vars", len(q.Get)),
	)

	body, err := c.f.Download(ctx, rawURL)
	if err != nil {
		return nil, eris.Wrapf(err, "census: fetch %s", q.Endpoint)
	}
	defer body.Close() //nolint:errcheck

	t, err := DecodeTable(ctx, body)
	if err != nil {
		return nil, eris.Wrapf(err, "census: %s", q.Endpoint)
	}
	return t, nil
}
