// Package trust aggregates every collected signal into a single 0..100
// trust score plus the ordered list of contributing signals.
package trust

import (
	"fmt"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/gramscope/report"
)

// Config tunes scoring. The zero value scores core signals only; use
// DefaultConfig for the full rule set.
type Config struct {
	// Auxiliary enables the presentation-flag rules (story highlights,
	// pronouns, private account).
	Auxiliary bool
	// Now anchors archive-age calculations. Zero means the wall clock.
	Now time.Time
}

// DefaultConfig returns the full-rule-set configuration.
func DefaultConfig() Config {
	return Config{Auxiliary: true}
}

// Score applies the default configuration.
func Score(p *report.Profile, phone *report.PhoneAnalysis, email *report.EmailAnalysis, bio *report.BioAnalysis) (int, []report.Signal) {
	return ScoreWith(DefaultConfig(), p, phone, email, bio)
}

// ScoreWith evaluates every rule in a fixed order against the profile and
// the classifier results, starting from a baseline of 10 for the account
// existing at all. The returned score is clamped to [0, 100]; the signal
// list preserves rule order and is deterministic for identical inputs.
func ScoreWith(cfg Config, p *report.Profile, phone *report.PhoneAnalysis, email *report.EmailAnalysis, bio *report.BioAnalysis) (int, []report.Signal) {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	score := 10
	signals := []report.Signal{{Label: "Account exists", Delta: 10, Severity: report.SeverityPositive}}
	add := func(label string, delta int, sev report.Severity) {
		score += delta
		signals = append(signals, report.Signal{Label: label, Delta: delta, Severity: sev})
	}

	if p.IsVerified {
		add("Verified", 30, report.SeverityPositive)
	}
	if p.IsMemorialized {
		add("Memorialized", 20, report.SeverityPositive)
	}

	if len(p.ArchiveFirstSeen) >= 4 {
		if year, err := strconv.Atoi(p.ArchiveFirstSeen[:4]); err == nil {
			yrs := now.Year() - year
			switch {
			case yrs >= 5:
				add(fmt.Sprintf("Archived since %d (%d+ yrs)", year, yrs), 25, report.SeverityPositive)
			case yrs >= 3:
				add(fmt.Sprintf("Archived since %d", year), 20, report.SeverityPositive)
			case yrs >= 1:
				add(fmt.Sprintf("Archived since %d", year), 12, report.SeverityCaution)
			default:
				add("Recent account", 5, report.SeverityCaution)
			}
		}
	}

	followers, following := p.Followers, p.Following
	switch {
	case followers >= 10000:
		add("Large following ("+formatCount(followers)+")", 15, report.SeverityPositive)
	case followers >= 1000:
		add("Good following ("+formatCount(followers)+")", 12, report.SeverityPositive)
	case followers >= 100:
		add("Moderate following", 8, report.SeverityCaution)
	case followers > 0:
		add("Small following", 4, report.SeverityCaution)
	}

	if followers > 0 && following > 0 {
		ratio := float64(followers) / float64(following)
		switch {
		case ratio >= 10:
			add("Influencer ratio", 10, report.SeverityPositive)
		case ratio >= 1:
			add("Healthy ratio", 8, report.SeverityPositive)
		case ratio < 0.1 && following > 500:
			add("Suspicious ratio", -5, report.SeverityRisk)
		}
	}

	switch {
	case p.Posts >= 50:
		add(fmt.Sprintf("Active (%d posts)", p.Posts), 8, report.SeverityPositive)
	case p.Posts >= 10:
		add("Some posts", 5, report.SeverityCaution)
	case p.Posts == 0 && !p.IsPrivate:
		add("No posts", -3, report.SeverityRisk)
	}

	if len(p.Biography) > 50 {
		add("Detailed bio", 5, report.SeverityPositive)
	}
	if containsSpace(p.FullName) {
		add("Real name format", 5, report.SeverityPositive)
	}
	if p.AvatarID != "" {
		add("Custom profile picture", 5, report.SeverityPositive)
	}
	if len(p.BioLinks) > 0 {
		add("Bio links", 5, report.SeverityPositive)
	}

	// Contact modifiers always adjust the score when contact data exists,
	// but only named providers/countries earn a visible signal line.
	if email != nil && email.Raw != "" {
		score += email.ScoreModifier
		if email.Provider != "" {
			signals = append(signals, report.Signal{
				Label:    "Email: " + email.Provider,
				Delta:    email.ScoreModifier,
				Severity: report.SeverityPositive,
			})
		}
	}

	if phone != nil && phone.Raw != "" {
		score += phone.ScoreModifier
		if phone.Country != "" {
			sev := report.SeverityPositive
			switch phone.RiskLevel {
			case report.RiskVeryHigh, report.RiskHigh:
				sev = report.SeverityRisk
			case report.RiskModerate:
				sev = report.SeverityCaution
			}
			signals = append(signals, report.Signal{
				Label:    "Phone: " + phone.Country,
				Delta:    phone.ScoreModifier,
				Severity: sev,
			})
		}
	}

	if bio != nil {
		switch bio.RiskLevel {
		case report.BioRiskHigh:
			add("High-risk bio content", -15, report.SeverityRisk)
		case report.BioRiskModerate:
			add("Moderate-risk bio content", -8, report.SeverityCaution)
		}
	}

	if cfg.Auxiliary {
		if p.HasHighlights {
			add("Story highlights", 5, report.SeverityPositive)
		}
		if len(p.Pronouns) > 0 {
			add("Pronouns set", 4, report.SeverityPositive)
		}
		if p.IsPrivate {
			add("Private account", 5, report.SeverityPositive)
		}
	}

	return clamp(score), signals
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}

// formatCount renders large counts with K/M suffixes for signal labels.
func formatCount(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return strconv.Itoa(n)
	}
}
