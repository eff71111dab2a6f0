package ruleset

import "github.com/codeGROOVE-dev/gramscope/report"

// Provider describes a known email provider domain.
type Provider struct {
	Name     string
	Company  string
	Security report.Security
	Type     string // free, secure, isp
}

// Providers is the registry of known email provider domains, keyed by domain.
var Providers = map[string]Provider{
	// Major providers
	"gmail.com":      {"Gmail", "Google", report.SecurityHigh, "free"},
	"googlemail.com": {"Gmail", "Google", report.SecurityHigh, "free"},
	"yahoo.com":      {"Yahoo", "Yahoo", report.SecurityMedium, "free"},
	"yahoo.fr":       {"Yahoo France", "Yahoo", report.SecurityMedium, "free"},
	"yahoo.co.uk":    {"Yahoo UK", "Yahoo", report.SecurityMedium, "free"},
	"outlook.com":    {"Outlook", "Microsoft", report.SecurityHigh, "free"},
	"hotmail.com":    {"Hotmail", "Microsoft", report.SecurityMedium, "free"},
	"hotmail.fr":     {"Hotmail France", "Microsoft", report.SecurityMedium, "free"},
	"live.com":       {"Live", "Microsoft", report.SecurityMedium, "free"},
	"msn.com":        {"MSN", "Microsoft", report.SecurityMedium, "free"},
	"icloud.com":     {"iCloud", "Apple", report.SecurityHigh, "free"},
	"me.com":         {"iCloud", "Apple", report.SecurityHigh, "free"},
	"mac.com":        {"iCloud", "Apple", report.SecurityHigh, "free"},
	// Secure providers
	"protonmail.com": {"ProtonMail", "Proton", report.SecurityVeryHigh, "secure"},
	"proton.me":      {"ProtonMail", "Proton", report.SecurityVeryHigh, "secure"},
	"tutanota.com":   {"Tutanota", "Tutanota", report.SecurityVeryHigh, "secure"},
	"tutamail.com":   {"Tutanota", "Tutanota", report.SecurityVeryHigh, "secure"},
	// French providers
	"orange.fr":   {"Orange", "Orange FR", report.SecurityMedium, "isp"},
	"wanadoo.fr":  {"Wanadoo", "Orange FR", report.SecurityMedium, "isp"},
	"free.fr":     {"Free", "Free FR", report.SecurityMedium, "isp"},
	"sfr.fr":      {"SFR", "SFR FR", report.SecurityMedium, "isp"},
	"laposte.net": {"LaPoste", "LaPoste FR", report.SecurityMedium, "free"},
	"bbox.fr":     {"Bbox", "Bouygues FR", report.SecurityMedium, "isp"},
	// German providers
	"gmx.com":     {"GMX", "GMX", report.SecurityMedium, "free"},
	"gmx.de":      {"GMX DE", "GMX", report.SecurityMedium, "free"},
	"web.de":      {"Web.de", "Web.de", report.SecurityMedium, "free"},
	"t-online.de": {"T-Online", "Deutsche Telekom", report.SecurityMedium, "isp"},
	// Other
	"aol.com":    {"AOL", "AOL", report.SecurityLow, "free"},
	"mail.ru":    {"Mail.ru", "Mail.ru", report.SecurityLow, "free"},
	"yandex.ru":  {"Yandex", "Yandex", report.SecurityLow, "free"},
	"yandex.com": {"Yandex", "Yandex", report.SecurityLow, "free"},
}

// Lookalike maps partially-masked domain signatures, as the lookup endpoint
// emits them, to a provider name.
type Lookalike struct {
	Patterns []string
	Provider string
}

// Lookalikes is checked after the exact provider registry. Signatures use
// the same fuzzy-mask matching as exact domains.
var Lookalikes = []Lookalike{
	{[]string{"g***l.com", "gm**l.com", "g****.com"}, "Gmail"},
	{[]string{"y***o.com", "ya**o.com", "y****.com"}, "Yahoo"},
	{[]string{"o*****k.com", "ou*****.com"}, "Outlook"},
	{[]string{"h*****l.com", "ho****l.com"}, "Hotmail"},
	{[]string{"i****d.com", "ic***d.com"}, "iCloud"},
	{[]string{"p*****mail.com", "pr****mail.com"}, "ProtonMail"},
}

// TLD classification suffix sets.
var (
	EducationalTLDs  = map[string]bool{".edu": true, ".ac.uk": true, ".edu.au": true, ".edu.fr": true}
	GovernmentTLDs   = map[string]bool{".gov": true, ".gouv.fr": true, ".gov.uk": true, ".mil": true}
	OrganizationTLDs = map[string]bool{".org": true}
)
