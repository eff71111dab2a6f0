// Package email classifies (possibly masked) email strings into provider
// identity, domain type, and security tier. Obfuscated addresses like
// "j***n@g***l.com" are resolved against the ruleset provider registry
// using fuzzy-mask matching.
package email

import (
	"slices"
	"strings"
	"sync"

	"github.com/codeGROOVE-dev/gramscope/report"
	"github.com/codeGROOVE-dev/gramscope/ruleset"
)

var sortedProviderDomains = sync.OnceValue(func() []string {
	domains := make([]string, 0, len(ruleset.Providers))
	for d := range ruleset.Providers {
		domains = append(domains, d)
	}
	slices.Sort(domains)
	return domains
})

const mask = '*'

// Obfuscation mask runs of 3 literal characters may hide 3 to 6 real ones,
// the two conventional widths used by the source platform.
const (
	maskRunMin = 3
	maskRunMax = 6
)

// Classify analyzes a raw email string. It fails closed: absent input or a
// string without '@' yields an analysis with only Raw set.
func Classify(raw string) *report.EmailAnalysis {
	result := &report.EmailAnalysis{Raw: raw}
	if raw == "" || !strings.Contains(raw, "@") {
		return result
	}

	lower := strings.ToLower(strings.TrimSpace(raw))
	local, domain, _ := strings.Cut(lower, "@")

	if local != "" {
		analyzeLocal(result, local)
	}
	if domain != "" {
		analyzeDomain(result, domain)
	}
	return result
}

func analyzeLocal(result *report.EmailAnalysis, local string) {
	if local[0] != mask {
		result.LocalFirstChar = string(local[0])
	}
	if local[len(local)-1] != mask {
		result.LocalLastChar = string(local[len(local)-1])
	}

	// A run of 3+ mask characters is one ambiguous obfuscation group hiding
	// 3 to 6 characters; shorter runs count one-for-one. The result is a
	// [min,max] range rather than a point estimate.
	visible := 0
	groups := 0
	singles := 0
	run := 0
	for i := 0; i <= len(local); i++ {
		if i < len(local) && local[i] == mask {
			run++
			continue
		}
		if run >= maskRunMin {
			groups++
		} else {
			singles += run
		}
		run = 0
		if i < len(local) {
			visible++
		}
	}

	result.LocalMinLen = visible + singles + groups*maskRunMin
	result.LocalMaxLen = visible + singles + groups*maskRunMax
}

func analyzeDomain(result *report.EmailAnalysis, domain string) {
	if i := strings.LastIndex(domain, "."); i >= 0 {
		result.TLD = domain[i:]
		result.DomainType = classifyTLD(domain)
	}

	// Exact provider match via fuzzy-mask comparison. Iteration is sorted
	// so that a masked domain matching several registry entries always
	// resolves the same way.
	for _, d := range sortedProviderDomains() {
		if !matchMasked(domain, d) {
			continue
		}
		p := ruleset.Providers[d]
		result.Provider = p.Name
		result.Confidence = report.ConfidenceHigh
		result.SecurityLevel = p.Security
		if p.Type != "free" {
			result.DomainType = p.Type
		}
		if p.Security == report.SecurityHigh || p.Security == report.SecurityVeryHigh {
			result.ScoreModifier = 2
		}
		break
	}

	if result.Provider == "" {
		if guess := guessProvider(domain); guess != "" {
			result.Provider = guess
			result.Confidence = report.ConfidenceMedium
			result.ScoreModifier = 1
		} else if result.DomainType == "standard" && !strings.Contains(domain, "mail") &&
			!strings.Contains(domain, "email") && !strings.Contains(domain, "***") {
			result.DomainType = "business/custom"
			result.Provider = "Custom domain"
			result.Confidence = report.ConfidenceLow
		}
	}

	if result.SecurityLevel == "" {
		switch {
		case result.DomainType == "educational" || result.DomainType == "government":
			result.SecurityLevel = report.SecurityMedium
		case result.Provider != "" && strings.Contains(strings.ToLower(result.Provider), "proton"):
			result.SecurityLevel = report.SecurityVeryHigh
		case result.DomainType == "business/custom":
			result.SecurityLevel = report.SecurityMedium
		}
	}
}

func classifyTLD(domain string) string {
	tld := domain[strings.LastIndex(domain, "."):]
	switch {
	case ruleset.EducationalTLDs[tld]:
		return "educational"
	case ruleset.GovernmentTLDs[tld]:
		return "government"
	case ruleset.OrganizationTLDs[tld]:
		return "organization"
	default:
		// Multi-label suffixes like .ac.uk or .gouv.fr.
		for suffix := range ruleset.EducationalTLDs {
			if strings.HasSuffix(domain, suffix) {
				return "educational"
			}
		}
		for suffix := range ruleset.GovernmentTLDs {
			if strings.HasSuffix(domain, suffix) {
				return "government"
			}
		}
		return "standard"
	}
}

// matchMasked reports whether a masked string could be the given reference:
// every position where neither side is masked must agree, lengths may differ
// by at most 3, and at least min(3, unmasked reference length) characters
// must actually agree. The agreement floor guards against over-eager matches
// on very short or heavily masked domains.
func matchMasked(text, pattern string) bool {
	text, pattern = strings.ToLower(text), strings.ToLower(pattern)
	diff := len(text) - len(pattern)
	if diff < -3 || diff > 3 {
		return false
	}

	matches := 0
	for i := 0; i < len(text) && i < len(pattern); i++ {
		t, p := text[i], pattern[i]
		if t == mask || p == mask {
			continue
		}
		if t != p {
			return false
		}
		matches++
	}

	need := len(pattern) - strings.Count(pattern, string(mask))
	if need > 3 {
		need = 3
	}
	return matches >= need
}

// guessProvider resolves a partially masked domain that failed the exact
// registry: first against the lookalike signatures, then by first-letter and
// TLD conventions.
func guessProvider(domain string) string {
	d := strings.ToLower(domain)

	for _, l := range ruleset.Lookalikes {
		for _, pat := range l.Patterns {
			if matchMasked(d, pat) {
				return l.Provider + " (likely)"
			}
		}
	}

	switch {
	case strings.HasPrefix(d, "g") && strings.Contains(d, ".com") && len(d) <= 12:
		return "Gmail (likely)"
	case strings.HasPrefix(d, "y") && strings.Contains(d, ".com"):
		return "Yahoo (likely)"
	case strings.HasPrefix(d, "o") && strings.Contains(d, ".com") && len(d) > 8:
		return "Outlook (likely)"
	case strings.HasPrefix(d, "h") && strings.Contains(d, ".com") && len(d) > 8:
		return "Hotmail (likely)"
	case strings.HasPrefix(d, "i") && strings.Contains(d, ".com"):
		return "iCloud (likely)"
	}

	if strings.Contains(d, ".fr") {
		switch d[:1] {
		case "o":
			return "Orange (likely)"
		case "f":
			return "Free (likely)"
		case "s":
			return "SFR (likely)"
		case "l":
			return "LaPoste (likely)"
		case "w":
			return "Wanadoo (likely)"
		}
	}
	if strings.Contains(d, ".de") {
		switch d[:1] {
		case "g":
			return "GMX (likely)"
		case "w":
			return "Web.de (likely)"
		case "t":
			return "T-Online (likely)"
		}
	}
	return ""
}
