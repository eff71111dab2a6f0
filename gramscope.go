// Package gramscope assesses the trustworthiness of an Instagram identity
// from public signals: the web profile API, obfuscated contact hints, the
// Internet Archive, and a set of offline classifiers for phone, email, and
// biography content. The result is a single Report with a bounded trust
// score and an auditable signal trail.
//
// Example:
//
//	rep, err := gramscope.Lookup(ctx, "username")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(rep.TrustScore)
package gramscope

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/gramscope/bio"
	"github.com/codeGROOVE-dev/gramscope/email"
	"github.com/codeGROOVE-dev/gramscope/httpcache"
	"github.com/codeGROOVE-dev/gramscope/instagram"
	"github.com/codeGROOVE-dev/gramscope/phone"
	"github.com/codeGROOVE-dev/gramscope/report"
	"github.com/codeGROOVE-dev/gramscope/trust"
	"github.com/codeGROOVE-dev/gramscope/wayback"
)

// defaultPacing spaces the primary fetch from the contact lookup. The two
// endpoints live on different hosts, so the per-domain rate limiter alone
// does not cover this gap.
const defaultPacing = 500 * time.Millisecond

// Option configures a lookup.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	cache    httpcache.Cacher
	trustCfg trust.Config
	pacing   time.Duration
}

// WithLogger sets a custom logger for all pipeline stages.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithHTTPCache sets an HTTP cache shared by all fetches.
func WithHTTPCache(cache httpcache.Cacher) Option {
	return func(c *config) { c.cache = cache }
}

// WithPacing overrides the delay between the profile fetch and the
// contact lookup.
func WithPacing(d time.Duration) Option {
	return func(c *config) { c.pacing = d }
}

// WithTrustConfig overrides the trust scoring configuration.
func WithTrustConfig(cfg trust.Config) Option {
	return func(c *config) { c.trustCfg = cfg }
}

// Lookup runs the full assessment pipeline for one Instagram handle.
// A leading "@" is stripped. Only a failed primary profile fetch aborts;
// every later stage degrades to absent data on error. A missing identity
// surfaces as report.ErrProfileNotFound with no partial report.
func Lookup(ctx context.Context, handle string, opts ...Option) (*report.Report, error) {
	cfg := &config{
		logger:   slog.Default(),
		trustCfg: trust.DefaultConfig(),
		pacing:   defaultPacing,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	username := strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if username == "" {
		return nil, fmt.Errorf("empty username")
	}

	ig, err := instagram.New(ctx,
		instagram.WithLogger(cfg.logger), instagram.WithHTTPCache(cfg.cache))
	if err != nil {
		return nil, err
	}

	p, err := ig.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	// The mobile lookup endpoint is sensitive to burst traffic; give it
	// breathing room after the primary fetch.
	if cfg.pacing > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.pacing):
		}
	}

	if contact, err := ig.FetchContact(ctx, username); err != nil {
		cfg.logger.Warn("contact lookup unavailable", "username", username, "error", err)
	} else if contact != nil {
		p.ObfuscatedEmail = contact.Email
		p.ObfuscatedPhone = contact.Phone
	}

	if extra, err := ig.FetchExtra(ctx, username, p.UserID); err != nil {
		cfg.logger.Warn("auxiliary lookup unavailable", "username", username, "error", err)
	} else if extra != nil {
		p.PublicEmail = extra.PublicEmail
		p.PublicPhone = extra.PublicPhone
		p.PhoneCountryCode = extra.PhoneCountryCode
		p.City = extra.City
		p.AccountType = extra.AccountType
	}

	wb, err := wayback.New(ctx,
		wayback.WithLogger(cfg.logger), wayback.WithHTTPCache(cfg.cache))
	if err != nil {
		return nil, err
	}
	if snap, err := wb.FirstSnapshot(ctx, username); err != nil {
		cfg.logger.Warn("archive lookup unavailable", "username", username, "error", err)
	} else if snap != nil {
		p.ArchiveFirstSeen = snap.Date
		p.ArchiveURL = snap.URL
	}

	var phoneAnalysis *report.PhoneAnalysis
	if p.ObfuscatedPhone != "" {
		phoneAnalysis = phone.Classify(p.ObfuscatedPhone)
	}
	var emailAnalysis *report.EmailAnalysis
	if p.ObfuscatedEmail != "" {
		emailAnalysis = email.Classify(p.ObfuscatedEmail)
	}
	var bioAnalysis *report.BioAnalysis
	if p.Biography != "" {
		bioAnalysis = bio.Analyze(p.Biography)
	}

	score, signals := trust.ScoreWith(cfg.trustCfg, p, phoneAnalysis, emailAnalysis, bioAnalysis)

	rep := &report.Report{
		Profile:       p,
		Phone:         phoneAnalysis,
		Email:         emailAnalysis,
		Bio:           bioAnalysis,
		TrustScore:    score,
		Signals:       signals,
		CrossPlatform: CrossPlatformLinks(username),
		GeneratedAt:   time.Now().UTC(),
	}
	if p.AvatarURL != "" {
		rep.ReverseImage = ReverseImageLinks(p.AvatarURL)
	}

	cfg.logger.InfoContext(ctx, "lookup complete",
		"username", username, "trust_score", score, "signals", len(signals))

	return rep, nil
}
