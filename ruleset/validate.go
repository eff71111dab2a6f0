package ruleset

import (
	"fmt"
	"strings"
)

func init() {
	if err := Validate(); err != nil {
		panic("ruleset: " + err.Error())
	}
}

// Validate checks the static tables for defects: duplicate or malformed
// prefixes, inverted carrier ranges, plans without a matching country entry.
// A failure here is a programming error, so package init panics on it.
func Validate() error {
	seen := make(map[string]bool)
	for _, cr := range HighRiskPrefixes {
		if err := checkPrefix(cr.Prefix); err != nil {
			return err
		}
		if seen[cr.Prefix] {
			return fmt.Errorf("duplicate high-risk prefix %q", cr.Prefix)
		}
		seen[cr.Prefix] = true
		if cr.Country == "" || cr.Level == "" {
			return fmt.Errorf("incomplete high-risk entry %q", cr.Prefix)
		}
		if cr.Modifier >= 0 {
			return fmt.Errorf("high-risk prefix %q has non-negative modifier %d", cr.Prefix, cr.Modifier)
		}
	}
	for _, tp := range TrustedPrefixes {
		if err := checkPrefix(tp.Prefix); err != nil {
			return err
		}
		if seen[tp.Prefix] {
			return fmt.Errorf("prefix %q appears in both risk tables", tp.Prefix)
		}
		seen[tp.Prefix] = true
		if tp.Country == "" {
			return fmt.Errorf("trusted prefix %q has no country", tp.Prefix)
		}
	}

	for code, plan := range Plans {
		if !seen[code] {
			return fmt.Errorf("plan %q has no prefix table entry", code)
		}
		for _, r := range plan.Carriers {
			if r.Carrier == "" {
				return fmt.Errorf("plan %q: carrier rule without carrier name", code)
			}
			switch {
			case r.Ranged():
				if r.Digit == "" || len(r.Lo) != 2 || len(r.Hi) != 2 || r.Lo > r.Hi {
					return fmt.Errorf("plan %q: malformed carrier range %q-%q", code, r.Lo, r.Hi)
				}
				if !strings.HasPrefix(r.Lo, r.Digit) || !strings.HasPrefix(r.Hi, r.Digit) {
					return fmt.Errorf("plan %q: range %q-%q outside digit gate %q", code, r.Lo, r.Hi, r.Digit)
				}
			default:
				if r.Digit != "" || r.Lo != "" || r.Hi != "" {
					return fmt.Errorf("plan %q: carrier rule mixes range and prefix forms", code)
				}
				if len(r.Prefix) < 2 || len(r.Prefix) > 3 {
					return fmt.Errorf("plan %q: carrier prefix %q must be 2-3 digits", code, r.Prefix)
				}
			}
		}
		for _, a := range plan.Areas {
			if a.Code == "" || a.Area == "" {
				return fmt.Errorf("plan %q: incomplete area rule", code)
			}
		}
	}

	for domain, p := range Providers {
		if !strings.Contains(domain, ".") || domain != strings.ToLower(domain) {
			return fmt.Errorf("provider domain %q must be a lowercase domain", domain)
		}
		if p.Name == "" || p.Security == "" || p.Type == "" {
			return fmt.Errorf("incomplete provider entry %q", domain)
		}
	}
	for _, l := range Lookalikes {
		if l.Provider == "" || len(l.Patterns) == 0 {
			return fmt.Errorf("incomplete lookalike entry %q", l.Provider)
		}
	}

	for _, sp := range ScamPatterns {
		if sp.Label == "" || sp.Points <= 0 {
			return fmt.Errorf("scam pattern %q must have a label and positive points", sp.Label)
		}
	}
	for _, s := range Shorteners {
		if s == "" || s != strings.ToLower(s) {
			return fmt.Errorf("shortener entry %q must be lowercase", s)
		}
	}
	return nil
}

func checkPrefix(p string) error {
	if !strings.HasPrefix(p, "+") || len(p) < 2 || len(p) > 4 {
		return fmt.Errorf("prefix %q must be + followed by 1-3 digits", p)
	}
	for _, c := range p[1:] {
		if c < '0' || c > '9' {
			return fmt.Errorf("prefix %q contains a non-digit", p)
		}
	}
	return nil
}
