// Package bio scans free-text biographies for embedded contact data and
// scam-phrase signals. Analysis is pure: no network access, no state.
package bio

import (
	"regexp"
	"strings"

	"github.com/codeGROOVE-dev/gramscope/report"
	"github.com/codeGROOVE-dev/gramscope/ruleset"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{2,4}\)?[-.\s]?)?\d{2,4}[-.\s]?\d{2,4}[-.\s]?\d{2,4}`)
	urlPattern   = regexp.MustCompile(`https?://[^\s]+|www\.[^\s]+`)
	nonDigit     = regexp.MustCompile(`[^0-9]`)
)

// Risk tier thresholds for the accumulated scam score.
const (
	highThreshold     = 40
	moderateThreshold = 20
)

// Analyze extracts contact data from a biography and scores it against the
// scam-phrase catalogue. An empty bio yields an empty analysis; a bio with
// no matches yields an absent risk tier, not a low one.
func Analyze(text string) *report.BioAnalysis {
	result := &report.BioAnalysis{}
	if text == "" {
		return result
	}

	result.Emails = emailPattern.FindAllString(text, -1)
	result.URLs = urlPattern.FindAllString(text, -1)

	// Phone-like substrings need at least 8 digits; fewer is usually a date
	// or a price, not a number.
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		if len(nonDigit.ReplaceAllString(candidate, "")) >= 8 {
			result.Phones = append(result.Phones, strings.TrimSpace(candidate))
		}
	}

	score := 0
	for _, sp := range ruleset.ScamPatterns {
		if sp.Pattern.MatchString(text) {
			result.ScamIndicators = append(result.ScamIndicators, sp.Label)
			score += sp.Points
		}
	}

	for _, u := range result.URLs {
		lower := strings.ToLower(u)
		for _, shortener := range ruleset.Shorteners {
			if strings.Contains(lower, shortener) {
				result.ScamIndicators = append(result.ScamIndicators, "Shortened URL ("+shortener+")")
				score += ruleset.ShortenerPoints
				break
			}
		}
	}

	switch {
	case score >= highThreshold:
		result.RiskLevel = report.BioRiskHigh
	case score >= moderateThreshold:
		result.RiskLevel = report.BioRiskModerate
	case score > 0:
		result.RiskLevel = report.BioRiskLow
	}
	return result
}
