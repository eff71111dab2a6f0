// Package instagram fetches Instagram profile data through the public web
// API surface: the primary profile endpoint, the obfuscated-contact lookup
// endpoint, and two auxiliary endpoints for public contact fields. Every
// fetch is individually failure-tolerant; only the primary fetch can abort
// a lookup.
package instagram

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/gramscope/httpcache"
	"github.com/codeGROOVE-dev/gramscope/report"
)

const (
	defaultWebBase    = "https://www.instagram.com"
	defaultMobileBase = "https://i.instagram.com"

	appID           = "936619743392459"
	mobileUserAgent = "Instagram 275.0.0.27.98 Android"
)

// Client handles Instagram requests.
type Client struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
	webBase    string
	mobileBase string
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

// New creates an Instagram client. No authentication is used beyond static
// headers.
func New(_ context.Context, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // the mobile API endpoints fail default verification
			},
		},
		cache:      cfg.cache,
		logger:     cfg.logger,
		webBase:    defaultWebBase,
		mobileBase: defaultMobileBase,
	}, nil
}

// FetchProfile retrieves the primary profile record. A missing identity maps
// to report.ErrProfileNotFound; a rate-limited response maps to
// report.ErrRateLimited. Any error here aborts the lookup.
func (c *Client) FetchProfile(ctx context.Context, username string) (*report.Profile, error) {
	apiURL := c.webBase + "/api/v1/users/web_profile_info/?username=" + url.QueryEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", httpcache.UserAgent)
	req.Header.Set("x-ig-app-id", appID)
	req.Header.Set("x-requested-with", "XMLHttpRequest")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Referer", c.webBase+"/"+username+"/")

	c.logger.InfoContext(ctx, "fetching instagram profile", "username", username)

	body, err := httpcache.FetchURL(ctx, c.cache, c.httpClient, req, c.logger)
	if err != nil {
		var httpErr *httpcache.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusNotFound:
				return nil, fmt.Errorf("%w: %s", report.ErrProfileNotFound, username)
			case http.StatusTooManyRequests:
				return nil, fmt.Errorf("%w: profile fetch", report.ErrRateLimited)
			}
		}
		return nil, fmt.Errorf("profile fetch: %w", err)
	}

	return parseProfile(body, username)
}

type edgeCount struct {
	Count int `json:"count"`
}

func parseProfile(data []byte, username string) (*report.Profile, error) {
	var resp struct {
		Data struct {
			User *struct {
				ID            string `json:"id"`
				FullName      string `json:"full_name"`
				Biography     string `json:"biography"`
				ExternalURL   string `json:"external_url"`
				AvatarURLHD   string `json:"profile_pic_url_hd"`
				AvatarURL     string `json:"profile_pic_url"`
				AvatarID      string `json:"profile_pic_id"`
				IsPrivate     bool   `json:"is_private"`
				IsVerified    bool   `json:"is_verified"`
				IsBusiness    bool   `json:"is_business_account"`
				IsProf        bool   `json:"is_professional_account"`
				IsMemorial    bool   `json:"is_memorialized"`
				Supervision   bool   `json:"is_supervision_enabled"`
				HasChannel    bool   `json:"has_channel"`
				HasGuides     bool   `json:"has_guides"`
				Category      string `json:"category_name"`
				BusinessEmail string `json:"business_email"`
				BusinessPhone string `json:"business_phone_number"`
				BusinessAddr  string `json:"business_address_json"`

				Pronouns []string `json:"pronouns"`
				BioLinks []struct {
					URL string `json:"url"`
				} `json:"bio_links"`

				Followers  edgeCount `json:"edge_followed_by"`
				Following  edgeCount `json:"edge_follow"`
				Highlights edgeCount `json:"edge_highlight_reels"`
				Videos     edgeCount `json:"edge_felix_video_timeline"`
				Clips      edgeCount `json:"edge_clips_viewer"`
				Timeline   struct {
					Count int `json:"count"`
					Edges []struct {
						Node struct {
							TakenAt int64 `json:"taken_at_timestamp"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"edge_owner_to_timeline_media"`
			} `json:"user"`
		} `json:"data"`
	}

	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("profile parse: %w", err)
	}
	u := resp.Data.User
	if u == nil {
		return nil, fmt.Errorf("%w: %s", report.ErrProfileNotFound, username)
	}

	p := &report.Profile{
		Username:           username,
		UserID:             u.ID,
		FullName:           u.FullName,
		Biography:          u.Biography,
		ExternalURL:        u.ExternalURL,
		AvatarID:           u.AvatarID,
		IsPrivate:          u.IsPrivate,
		IsVerified:         u.IsVerified,
		IsBusiness:         u.IsBusiness,
		IsProfessional:     u.IsProf,
		IsMemorialized:     u.IsMemorial,
		SupervisionEnabled: u.Supervision,
		HasChannel:         u.HasChannel,
		HasGuides:          u.HasGuides,
		HasHighlights:      u.Highlights.Count > 0,
		HasVideos:          u.Videos.Count > 0,
		HasClips:           u.Clips.Count > 0,
		BusinessCategory:   u.Category,
		BusinessEmail:      u.BusinessEmail,
		BusinessPhone:      u.BusinessPhone,
		BusinessAddress:    u.BusinessAddr,
		Pronouns:           u.Pronouns,
		Followers:          u.Followers.Count,
		Following:          u.Following.Count,
		Posts:              u.Timeline.Count,
	}

	p.AvatarURL = u.AvatarURLHD
	if p.AvatarURL == "" {
		p.AvatarURL = u.AvatarURL
	}

	for _, l := range u.BioLinks {
		if l.URL != "" {
			p.BioLinks = append(p.BioLinks, l.URL)
		}
	}

	// First-post estimate from the visible timeline edges. Private accounts
	// expose no timeline, so skip the scan entirely.
	if !p.IsPrivate {
		var oldest int64
		for _, e := range u.Timeline.Edges {
			if ts := e.Node.TakenAt; ts > 0 && (oldest == 0 || ts < oldest) {
				oldest = ts
			}
		}
		if oldest > 0 {
			t := time.Unix(oldest, 0).UTC()
			p.FirstPostDate = t.Format("2006-01-02 15:04:05")
			p.EstimatedCreation = "~" + t.Format("January 2006")
		}
	}

	return p, nil
}

// Contact holds the obfuscated contact strings from the lookup endpoint.
type Contact struct {
	Email string
	Phone string
}

// FetchContact retrieves the masked email/phone hints via the mobile lookup
// API. The POST is never retried and never cached: a transient failure
// simply yields absent contact fields.
func (c *Client) FetchContact(ctx context.Context, username string) (*Contact, error) {
	payload, err := json.Marshal(map[string]string{"q": username, "ig_sig_key_version": "4"})
	if err != nil {
		return nil, err
	}
	form := url.Values{
		"ig_sig_key_version": {"4"},
		"signed_body":        {"SIGNATURE." + string(payload)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.mobileBase+"/api/v1/users/lookup/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", mobileUserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.InfoContext(ctx, "fetching obfuscated contact info", "username", username)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contact lookup: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close errors are not actionable

	if resp.StatusCode != http.StatusOK {
		return nil, &httpcache.HTTPError{StatusCode: resp.StatusCode, URL: req.URL.String()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	return parseContact(body)
}

func parseContact(data []byte) (*Contact, error) {
	var resp struct {
		ObfuscatedEmail string `json:"obfuscated_email"`
		ObfuscatedPhone string `json:"obfuscated_phone"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("contact parse: %w", err)
	}
	return &Contact{Email: resp.ObfuscatedEmail, Phone: resp.ObfuscatedPhone}, nil
}

// Extra holds auxiliary fields from the secondary endpoints.
type Extra struct {
	PublicEmail      string
	PublicPhone      string
	PhoneCountryCode string
	City             string
	AccountType      int
}

// FetchExtra tries the user-info endpoint (keyed by internal identifier)
// and falls back to the search endpoint for the account-type code. Both
// sub-fetches are optional; FetchExtra returns nil when nothing was found.
func (c *Client) FetchExtra(ctx context.Context, username, userID string) (*Extra, error) {
	extra := &Extra{}

	if userID != "" {
		if err := c.fetchUserInfo(ctx, userID, extra); err != nil {
			c.logger.Debug("user info fetch failed", "user_id", userID, "error", err)
		}
	}

	if extra.AccountType == 0 {
		if err := c.fetchSearch(ctx, username, extra); err != nil {
			c.logger.Debug("search fetch failed", "username", username, "error", err)
		}
	}

	if extra.PublicEmail == "" && extra.PublicPhone == "" && extra.City == "" && extra.AccountType == 0 {
		return nil, nil
	}
	return extra, nil
}

func (c *Client) fetchUserInfo(ctx context.Context, userID string, extra *Extra) error {
	apiURL := c.mobileBase + "/api/v1/users/" + url.PathEscape(userID) + "/info/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", mobileUserAgent)

	body, err := httpcache.FetchURL(ctx, c.cache, c.httpClient, req, c.logger)
	if err != nil {
		return err
	}

	var resp struct {
		User struct {
			PublicEmail      string `json:"public_email"`
			PublicPhone      string `json:"public_phone_number"`
			PhoneCountryCode string `json:"public_phone_country_code"`
			CityName         string `json:"city_name"`
			AccountType      int    `json:"account_type"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("user info parse: %w", err)
	}

	extra.PublicEmail = resp.User.PublicEmail
	extra.PublicPhone = resp.User.PublicPhone
	extra.PhoneCountryCode = resp.User.PhoneCountryCode
	extra.City = resp.User.CityName
	extra.AccountType = resp.User.AccountType
	return nil
}

func (c *Client) fetchSearch(ctx context.Context, username string, extra *Extra) error {
	apiURL := c.mobileBase + "/api/v1/users/search/?q=" + url.QueryEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", mobileUserAgent)

	body, err := httpcache.FetchURL(ctx, c.cache, c.httpClient, req, c.logger)
	if err != nil {
		return err
	}

	var resp struct {
		Users []struct {
			Username    string `json:"username"`
			AccountType int    `json:"account_type"`
		} `json:"users"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("search parse: %w", err)
	}

	// Search is fuzzy; only accept a payload whose username matches exactly.
	for _, u := range resp.Users {
		if u.Username == username {
			if extra.AccountType == 0 {
				extra.AccountType = u.AccountType
			}
			break
		}
	}
	return nil
}
