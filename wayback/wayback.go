// Package wayback queries the Internet Archive CDX index for the earliest
// snapshot of a profile page. A lookup never fails because of this source:
// transient errors and empty indexes both surface as an absent result.
package wayback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/codeGROOVE-dev/gramscope/httpcache"
)

const defaultBase = "https://web.archive.org"

// Client handles Internet Archive requests.
type Client struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
	base       string
}

// Option configures a Client.
type Option func(*config)

type config struct {
	cache  httpcache.Cacher
	logger *slog.Logger
}

// WithHTTPCache sets the HTTP cache.
func WithHTTPCache(cache httpcache.Cacher) Option {
	return func(c *config) { c.cache = cache }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates a Wayback Machine client.
func New(_ context.Context, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		cache:      cfg.cache,
		logger:     cfg.logger,
		base:       defaultBase,
	}, nil
}

// Snapshot is the earliest archived capture of a profile page.
type Snapshot struct {
	// Date is the capture day formatted as YYYY-MM-DD.
	Date string
	// URL points at the archived copy.
	URL string
}

// FirstSnapshot returns the earliest capture on record for the given
// username, or nil when the archive has none.
func (c *Client) FirstSnapshot(ctx context.Context, username string) (*Snapshot, error) {
	apiURL := c.base + "/cdx/search/cdx?url=" +
		url.QueryEscape("instagram.com/"+username) + "&output=json&limit=1&from=2010"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", httpcache.UserAgent)

	c.logger.InfoContext(ctx, "querying archive index", "username", username)

	body, err := httpcache.FetchURL(ctx, c.cache, c.httpClient, req, c.logger)
	if err != nil {
		return nil, fmt.Errorf("archive query: %w", err)
	}

	return parseCDX(body, username)
}

// parseCDX reads the CDX JSON array-of-arrays format. Row zero is the
// header; row one, when present, is the earliest capture.
func parseCDX(data []byte, username string) (*Snapshot, error) {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("archive parse: %w", err)
	}
	if len(rows) < 2 || len(rows[1]) < 2 {
		return nil, nil
	}

	ts := rows[1][1]
	if len(ts) < 8 {
		return nil, nil
	}

	return &Snapshot{
		Date: ts[:4] + "-" + ts[4:6] + "-" + ts[6:8],
		URL:  "https://web.archive.org/web/" + ts + "/https://instagram.com/" + username,
	}, nil
}
