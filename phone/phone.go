// Package phone classifies (possibly partially masked) phone strings into
// country, risk tier, line type, and carrier hints using the static tables
// in ruleset. Classification is pure and never fails: malformed input yields
// an analysis with only Raw populated.
package phone

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/gramscope/report"
	"github.com/codeGROOVE-dev/gramscope/ruleset"
)

// Classify analyzes a raw phone string. Sources return numbers with literal
// mask characters mixed into real digits, so only the leading dialing code
// is assumed to be intact.
func Classify(raw string) *report.PhoneAnalysis {
	result := &report.PhoneAnalysis{Raw: raw}
	if raw == "" {
		return result
	}

	number := strings.TrimSpace(raw)
	result.VisibleDigits = digitsOf(number)

	// High-risk table wins over trusted; within each table the longest
	// prefix wins so "+234" never falls through to a shorter code.
	if cr, ok := matchHighRisk(number); ok {
		result.Country = cr.Country
		result.CountryCode = cr.Prefix
		result.RiskLevel = cr.Level
		result.ScoreModifier = cr.Modifier
	} else if tp, ok := matchTrusted(number); ok {
		result.Country = tp.Country
		result.CountryCode = tp.Prefix
		result.RiskLevel = report.RiskTrusted
		result.ScoreModifier = ruleset.TrustedModifier
	}

	if plan, ok := ruleset.Plans[result.CountryCode]; ok {
		applyPlan(result, number, plan)
	}

	// The French plan's carrier-to-prefix mapping is finer-grained than the
	// generic rule mechanism expresses, so a hand-tuned refinement is
	// layered on top of the generic pass rather than folded into the table.
	if result.CountryCode == "+33" {
		refineFrance(result, number)
	}

	return result
}

func matchHighRisk(number string) (ruleset.CountryRisk, bool) {
	var best ruleset.CountryRisk
	found := false
	for _, cr := range ruleset.HighRiskPrefixes {
		if strings.HasPrefix(number, cr.Prefix) && (!found || len(cr.Prefix) > len(best.Prefix)) {
			best = cr
			found = true
		}
	}
	return best, found
}

func matchTrusted(number string) (ruleset.TrustedPrefix, bool) {
	var best ruleset.TrustedPrefix
	found := false
	for _, tp := range ruleset.TrustedPrefixes {
		if strings.HasPrefix(number, tp.Prefix) && (!found || len(tp.Prefix) > len(best.Prefix)) {
			best = tp
			found = true
		}
	}
	return best, found
}

func applyPlan(result *report.PhoneAnalysis, number string, plan ruleset.Plan) {
	result.Format = plan.Format

	rest := subscriberNumber(number, result.CountryCode)
	if rest == "" {
		return
	}

	first := rest[:1]
	firstTwo := first
	if len(rest) >= 2 {
		firstTwo = rest[:2]
	}
	firstThree := firstTwo
	if len(rest) >= 3 {
		firstThree = rest[:3]
	}

	// Line type: mobile prefix sets may contain one- or two-digit entries.
	for _, m := range plan.Mobile {
		if first == m || firstTwo == m {
			result.LineType = report.LineMobile
			break
		}
	}
	if result.LineType == "" {
		for _, l := range plan.Landline {
			if first == l {
				result.LineType = report.LineLandline
				break
			}
		}
	}

	for _, rule := range plan.Carriers {
		if rule.Ranged() {
			if first == rule.Digit && rule.Lo <= firstTwo && firstTwo <= rule.Hi {
				result.CarrierHint = rule.Carrier
				result.OperatorRange = fmt.Sprintf("%s (%s)", rule.Carrier, firstTwo)
				break
			}
		} else if firstThree == rule.Prefix || firstTwo == rule.Prefix {
			result.CarrierHint = rule.Carrier
			result.OperatorRange = rule.Carrier
			break
		}
	}

	for _, area := range plan.Areas {
		if strings.HasPrefix(rest, area.Code) {
			result.OperatorRange = area.Area
			break
		}
	}
}

// refineFrance applies the finer-grained French carrier and region mapping.
func refineFrance(result *report.PhoneAnalysis, number string) {
	rest := subscriberNumber(number, "+33")
	if rest == "" {
		return
	}

	switch rest[:1] {
	case "6":
		result.LineType = report.LineMobile
		two := "6"
		if len(rest) >= 2 {
			two = rest[:2]
		}
		switch two {
		case "60", "61", "62", "63":
			result.CarrierHint = "Orange (historic 06 range)"
		case "64", "65":
			result.CarrierHint = "SFR (historic 06 range)"
		case "66", "67":
			result.CarrierHint = "Bouygues Telecom"
		case "68", "69":
			result.CarrierHint = "Mixed operators"
		}
		result.OperatorRange = fmt.Sprintf("06 range (%s)", two)
	case "7":
		result.LineType = report.LineMobile
		two := "7"
		if len(rest) >= 2 {
			two = rest[:2]
		}
		switch two {
		case "70", "71", "72", "73":
			result.CarrierHint = "Free Mobile / MVNOs"
		default:
			result.CarrierHint = "New allocations (07)"
		}
		result.OperatorRange = fmt.Sprintf("07 range (%s)", two)
	case "1":
		result.LineType = report.LineLandline
		result.OperatorRange = "Île-de-France (01)"
	case "2":
		result.LineType = report.LineLandline
		result.OperatorRange = "Nord-Ouest (02)"
	case "3":
		result.LineType = report.LineLandline
		result.OperatorRange = "Nord-Est (03)"
	case "4":
		result.LineType = report.LineLandline
		result.OperatorRange = "Sud-Est (04)"
	case "5":
		result.LineType = report.LineLandline
		result.OperatorRange = "Sud-Ouest (05)"
	}
}

// subscriberNumber strips the dialing code and separator characters.
func subscriberNumber(number, code string) string {
	rest := strings.TrimPrefix(number, code)
	rest = strings.TrimSpace(rest)
	rest = strings.ReplaceAll(rest, " ", "")
	rest = strings.ReplaceAll(rest, "-", "")
	return rest
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
