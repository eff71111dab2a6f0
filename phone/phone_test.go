package phone

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/gramscope/report"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want report.PhoneAnalysis
	}{
		{
			name: "empty input",
			raw:  "",
			want: report.PhoneAnalysis{},
		},
		{
			name: "no dialing code",
			raw:  "0612345678",
			want: report.PhoneAnalysis{
				Raw:           "0612345678",
				VisibleDigits: "0612345678",
			},
		},
		{
			name: "nigeria very high risk",
			raw:  "+234 80 123 4567",
			want: report.PhoneAnalysis{
				Raw:           "+234 80 123 4567",
				Country:       "Nigeria",
				CountryCode:   "+234",
				RiskLevel:     report.RiskVeryHigh,
				ScoreModifier: -20,
				VisibleDigits: "234801234567",
			},
		},
		{
			name: "ukraine moderate risk",
			raw:  "+380 67 123 4567",
			want: report.PhoneAnalysis{
				Raw:           "+380 67 123 4567",
				Country:       "Ukraine",
				CountryCode:   "+380",
				RiskLevel:     report.RiskModerate,
				ScoreModifier: -5,
				VisibleDigits: "380671234567",
			},
		},
		{
			name: "french mobile orange range",
			raw:  "+33 6 12 34 56 78",
			want: report.PhoneAnalysis{
				Raw:           "+33 6 12 34 56 78",
				Country:       "France",
				CountryCode:   "+33",
				RiskLevel:     report.RiskTrusted,
				ScoreModifier: 3,
				LineType:      report.LineMobile,
				CarrierHint:   "Orange (historic 06 range)",
				OperatorRange: "06 range (61)",
				Format:        "+33 X XX XX XX XX",
				VisibleDigits: "33612345678",
			},
		},
		{
			name: "french mobile free range",
			raw:  "+33 7 01 02 03 04",
			want: report.PhoneAnalysis{
				Raw:           "+33 7 01 02 03 04",
				Country:       "France",
				CountryCode:   "+33",
				RiskLevel:     report.RiskTrusted,
				ScoreModifier: 3,
				LineType:      report.LineMobile,
				CarrierHint:   "Free Mobile / MVNOs",
				OperatorRange: "07 range (70)",
				Format:        "+33 X XX XX XX XX",
				VisibleDigits: "33701020304",
			},
		},
		{
			name: "french landline region",
			raw:  "+33 1 42 68 53 00",
			want: report.PhoneAnalysis{
				Raw:           "+33 1 42 68 53 00",
				Country:       "France",
				CountryCode:   "+33",
				RiskLevel:     report.RiskTrusted,
				ScoreModifier: 3,
				LineType:      report.LineLandline,
				OperatorRange: "Île-de-France (01)",
				Format:        "+33 X XX XX XX XX",
				VisibleDigits: "33142685300",
			},
		},
		{
			name: "german mobile with carrier",
			raw:  "+49 171 2345678",
			want: report.PhoneAnalysis{
				Raw:           "+49 171 2345678",
				Country:       "Allemagne",
				CountryCode:   "+49",
				RiskLevel:     report.RiskTrusted,
				ScoreModifier: 3,
				LineType:      report.LineMobile,
				CarrierHint:   "T-Mobile",
				OperatorRange: "T-Mobile",
				Format:        "+49 1XX XXXXXXXX",
				VisibleDigits: "491712345678",
			},
		},
		{
			name: "uk landline with area",
			raw:  "+44 20 7946 0958",
			want: report.PhoneAnalysis{
				Raw:           "+44 20 7946 0958",
				Country:       "UK",
				CountryCode:   "+44",
				RiskLevel:     report.RiskTrusted,
				ScoreModifier: 3,
				LineType:      report.LineLandline,
				OperatorRange: "London",
				Format:        "+44 7XXX XXXXXX",
				VisibleDigits: "442079460958",
			},
		},
		{
			name: "north american area only",
			raw:  "+1 212 555 0147",
			want: report.PhoneAnalysis{
				Raw:           "+1 212 555 0147",
				Country:       "USA/Canada",
				CountryCode:   "+1",
				RiskLevel:     report.RiskTrusted,
				ScoreModifier: 3,
				OperatorRange: "New York",
				Format:        "+1 XXX XXX XXXX",
				VisibleDigits: "12125550147",
			},
		},
		{
			name: "three digit trusted code",
			raw:  "+358 40 1234567",
			want: report.PhoneAnalysis{
				Raw:           "+358 40 1234567",
				Country:       "Finlande",
				CountryCode:   "+358",
				RiskLevel:     report.RiskTrusted,
				ScoreModifier: 3,
				VisibleDigits: "358401234567",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw)
			if diff := cmp.Diff(&tt.want, got); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

// Masked digits from the lookup endpoint must not break country detection.
func TestClassifyMasked(t *testing.T) {
	got := Classify("+33 6 ** ** ** 21")
	if got.Country != "France" {
		t.Errorf("Country = %q, want France", got.Country)
	}
	if got.LineType != report.LineMobile {
		t.Errorf("LineType = %q, want mobile", got.LineType)
	}
	if got.VisibleDigits != "33621" {
		t.Errorf("VisibleDigits = %q, want 33621", got.VisibleDigits)
	}
}

func TestClassifyLongestPrefixWins(t *testing.T) {
	// "+229..." must resolve to Bénin even though "+22" shares digits with
	// several other West African codes.
	got := Classify("+229 97 12 34 56")
	if got.Country != "Bénin" {
		t.Errorf("Country = %q, want Bénin", got.Country)
	}
	if got.RiskLevel != report.RiskVeryHigh {
		t.Errorf("RiskLevel = %q, want very_high", got.RiskLevel)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	const raw = "+49 176 5551234"
	first := Classify(raw)
	second := Classify(raw)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated classification differs (-first +second):\n%s", diff)
	}
}
