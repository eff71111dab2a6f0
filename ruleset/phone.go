// Package ruleset holds the static knowledge bases used by the classifiers:
// phone country-prefix risk tables, per-country numbering-plan rules, the
// email provider registry, scam-phrase patterns, and the URL-shortener
// denylist. The tables are pure data; a malformed entry is a programming
// defect and makes the package panic at init (see validate.go).
package ruleset

import "github.com/codeGROOVE-dev/gramscope/report"

// CountryRisk maps a dialing-code prefix to a country and risk tier.
// Modifier is the signed score delta baked into the table; classifiers
// never invent their own weights.
type CountryRisk struct {
	Prefix   string
	Country  string
	Level    report.Risk
	Modifier int
}

// HighRiskPrefixes lists dialing codes of regions with elevated scam
// prevalence. Callers must prefer the longest matching prefix so that a
// 3-digit code is never shadowed by a shorter one sharing its leading digit.
var HighRiskPrefixes = []CountryRisk{
	// West Africa
	{"+225", "Côte d'Ivoire", report.RiskVeryHigh, -20},
	{"+229", "Bénin", report.RiskVeryHigh, -20},
	{"+228", "Togo", report.RiskVeryHigh, -20},
	{"+233", "Ghana", report.RiskVeryHigh, -20},
	{"+234", "Nigeria", report.RiskVeryHigh, -20},
	{"+221", "Sénégal", report.RiskHigh, -12},
	{"+223", "Mali", report.RiskHigh, -12},
	{"+226", "Burkina Faso", report.RiskHigh, -12},
	{"+227", "Niger", report.RiskHigh, -12},
	{"+220", "Gambie", report.RiskHigh, -12},
	{"+224", "Guinée", report.RiskHigh, -12},
	{"+232", "Sierra Leone", report.RiskHigh, -12},
	{"+231", "Liberia", report.RiskHigh, -12},
	{"+237", "Cameroun", report.RiskHigh, -12},
	{"+243", "RD Congo", report.RiskHigh, -12},
	{"+241", "Gabon", report.RiskModerate, -5},
	{"+242", "Congo", report.RiskModerate, -5},
	{"+212", "Maroc", report.RiskModerate, -5},
	{"+216", "Tunisie", report.RiskModerate, -5},
	// Eastern Europe
	{"+380", "Ukraine", report.RiskModerate, -5},
	{"+375", "Biélorussie", report.RiskModerate, -5},
	// Southeast Asia scam compounds
	{"+95", "Myanmar", report.RiskHigh, -12},
	{"+856", "Laos", report.RiskHigh, -12},
	{"+855", "Cambodge", report.RiskModerate, -5},
	{"+63", "Philippines", report.RiskModerate, -5},
	{"+84", "Vietnam", report.RiskModerate, -5},
}

// TrustedModifier is the delta applied when a number resolves to a trusted
// prefix.
const TrustedModifier = 3

// TrustedPrefix maps a dialing code to a country with no elevated risk.
type TrustedPrefix struct {
	Prefix  string
	Country string
}

// TrustedPrefixes lists dialing codes of low-risk regions. Longest-prefix
// semantics apply here too ("+358" must win over "+35" style collisions).
var TrustedPrefixes = []TrustedPrefix{
	{"+33", "France"}, {"+1", "USA/Canada"}, {"+44", "UK"}, {"+49", "Allemagne"},
	{"+34", "Espagne"}, {"+39", "Italie"}, {"+41", "Suisse"}, {"+32", "Belgique"},
	{"+31", "Pays-Bas"}, {"+43", "Autriche"}, {"+81", "Japon"}, {"+82", "Corée du Sud"},
	{"+61", "Australie"}, {"+64", "Nouvelle-Zélande"}, {"+46", "Suède"}, {"+47", "Norvège"},
	{"+45", "Danemark"}, {"+358", "Finlande"}, {"+353", "Irlande"}, {"+351", "Portugal"},
	{"+48", "Pologne"}, {"+420", "Tchéquie"}, {"+7", "Russie"}, {"+86", "Chine"},
	{"+91", "Inde"}, {"+55", "Brésil"}, {"+52", "Mexique"}, {"+65", "Singapour"},
	{"+852", "Hong Kong"}, {"+971", "UAE"}, {"+966", "Arabie Saoudite"},
}

// CarrierRule resolves a subscriber-number prefix to an operator. A rule is
// one of two variants:
//   - ranged: Digit gates on the first subscriber digit, then the first two
//     digits are compared against the inclusive [Lo, Hi] range (two-digit
//     zero-padded strings, so lexicographic comparison is sufficient);
//   - flat: Prefix matches the leading two or three subscriber digits
//     directly.
type CarrierRule struct {
	Digit   string // ranged variant: first-digit gate
	Lo, Hi  string // ranged variant: inclusive two-digit range
	Prefix  string // flat variant: leading digits
	Carrier string
}

// Ranged reports whether the rule is the range variant.
func (r CarrierRule) Ranged() bool { return r.Prefix == "" }

// AreaRule maps a subscriber-number prefix to a geographic area.
type AreaRule struct {
	Code string
	Area string
}

// Plan describes a country's numbering plan. Only a subset of countries is
// modeled in detail.
type Plan struct {
	Mobile   []string // subscriber-number prefixes (1 or 2 digits) for mobile lines
	Landline []string // subscriber-number prefixes for landlines
	Format   string   // human-readable national format
	Carriers []CarrierRule
	Areas    []AreaRule
}

// Plans holds the detailed numbering-plan rules, keyed by dialing code.
var Plans = map[string]Plan{
	"+33": {
		Mobile:   []string{"6", "7"},
		Landline: []string{"1", "2", "3", "4", "5"},
		Format:   "+33 X XX XX XX XX",
		Carriers: []CarrierRule{
			{Digit: "6", Lo: "60", Hi: "63", Carrier: "Orange"},
			{Digit: "6", Lo: "64", Hi: "65", Carrier: "SFR"},
			{Digit: "6", Lo: "66", Hi: "67", Carrier: "Bouygues"},
			{Digit: "6", Lo: "68", Hi: "69", Carrier: "Mixed"},
			{Digit: "7", Lo: "70", Hi: "73", Carrier: "Free Mobile"},
			{Digit: "7", Lo: "74", Hi: "79", Carrier: "MVNOs/New"},
		},
	},
	"+44": {
		Mobile:   []string{"7"},
		Landline: []string{"1", "2", "3"},
		Format:   "+44 7XXX XXXXXX",
		Areas: []AreaRule{
			{"20", "London"}, {"121", "Birmingham"}, {"131", "Edinburgh"}, {"141", "Glasgow"},
		},
	},
	"+49": {
		Mobile:   []string{"15", "16", "17"},
		Landline: []string{"2", "3", "4", "5", "6", "7", "8", "9"},
		Format:   "+49 1XX XXXXXXXX",
		Carriers: []CarrierRule{
			{Prefix: "151", Carrier: "T-Mobile"}, {Prefix: "160", Carrier: "T-Mobile"},
			{Prefix: "170", Carrier: "T-Mobile"}, {Prefix: "171", Carrier: "T-Mobile"},
			{Prefix: "175", Carrier: "T-Mobile"},
			{Prefix: "152", Carrier: "Vodafone"}, {Prefix: "162", Carrier: "Vodafone"},
			{Prefix: "172", Carrier: "Vodafone"}, {Prefix: "173", Carrier: "Vodafone"},
			{Prefix: "174", Carrier: "Vodafone"},
			{Prefix: "155", Carrier: "O2"}, {Prefix: "157", Carrier: "O2"},
			{Prefix: "159", Carrier: "O2"}, {Prefix: "176", Carrier: "O2"},
			{Prefix: "179", Carrier: "O2"},
			{Prefix: "163", Carrier: "E-Plus"}, {Prefix: "177", Carrier: "E-Plus"},
			{Prefix: "178", Carrier: "E-Plus"},
		},
	},
	"+1": {
		Format: "+1 XXX XXX XXXX",
		Areas: []AreaRule{
			{"212", "New York"}, {"213", "Los Angeles"}, {"312", "Chicago"},
			{"415", "San Francisco"}, {"305", "Miami"}, {"416", "Toronto"},
			{"514", "Montreal"}, {"604", "Vancouver"},
		},
	},
	"+39": {Mobile: []string{"3"}, Landline: []string{"0"}, Format: "+39 3XX XXX XXXX"},
	"+34": {Mobile: []string{"6", "7"}, Landline: []string{"9"}, Format: "+34 6XX XXX XXX"},
	"+31": {Mobile: []string{"6"}, Landline: []string{"1", "2", "3", "4", "5", "7"}, Format: "+31 6 XXXX XXXX"},
	"+32": {Mobile: []string{"4"}, Landline: []string{"1", "2", "3", "5", "6", "7", "8", "9"}, Format: "+32 4XX XX XX XX"},
	"+41": {Mobile: []string{"7"}, Landline: []string{"2", "3", "4", "5", "6"}, Format: "+41 7X XXX XX XX"},
}
