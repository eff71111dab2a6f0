package ruleset

import "regexp"

// ScamPattern is one entry of the scam-phrase catalogue. Points reflect
// real-world scam prevalence per category, tuned independently.
type ScamPattern struct {
	Pattern *regexp.Regexp
	Label   string
	Points  int
}

// ScamPatterns is scanned case-insensitively against biography text.
var ScamPatterns = []ScamPattern{
	{regexp.MustCompile(`(?i)\b(invest|trading|forex|crypto|bitcoin|btc|eth|nft)\b`), "Investment/Crypto", 15},
	{regexp.MustCompile(`(?i)\b(make money|earn money|income|profit|roi|returns)\b`), "Money-making claims", 15},
	{regexp.MustCompile(`(?i)\b(\d+k|\d+\$|\$\d+|€\d+|\d+€)\s*(per|a|/)?\s*(day|week|month)\b`), "Income claims", 20},
	{regexp.MustCompile(`(?i)\b(passive income|financial freedom|get rich|millionaire)\b`), "Get-rich-quick", 20},
	{regexp.MustCompile(`(?i)\b(single|lonely|looking for love|soulmate|true love)\b`), "Romance bait", 15},
	{regexp.MustCompile(`(?i)\b(widow|widower|divorced|lost my|passed away)\b`), "Sympathy story", 20},
	{regexp.MustCompile(`(?i)\b(god.?fearing|honest|loyal|faithful|trustworthy)\b`), "Trust-building", 10},
	{regexp.MustCompile(`(?i)\b(dm|message|contact|text|whatsapp|telegram)\s*(me|for|now)\b`), "Contact request", 10},
	{regexp.MustCompile(`(?i)\b(link in bio|click link|check link|tap link)\b`), "Link pushing", 8},
	{regexp.MustCompile(`(?i)\b(limited time|act now|don't miss|last chance|hurry)\b`), "Urgency tactics", 12},
	{regexp.MustCompile(`(?i)\b(hiring|job opportunity|work from home|remote job)\b`), "Job offer", 8},
	{regexp.MustCompile(`(?i)\b(hack|hacker|recovery|recover account|unlock)\b`), "Hacking services", 25},
	{regexp.MustCompile(`(?i)\b(spell|love spell|voodoo|psychic|fortune)\b`), "Supernatural", 20},
	{regexp.MustCompile(`(?i)\b(beneficiary|inheritance|lottery|won|winner|claim)\b`), "Lottery scam", 25},
	{regexp.MustCompile(`(?i)\b(army|military|soldier|deployed|overseas)\b`), "Military scam", 15},
	{regexp.MustCompile(`(?i)\b(oil rig|offshore|engineer|contractor)\b`), "Oil rig scam", 20},
}

// ShortenerPoints is the penalty added for each shortened URL found in a bio.
const ShortenerPoints = 5

// Shorteners is the known URL-shortener denylist (substring match, lowercase).
var Shorteners = []string{
	"bit.ly", "tinyurl", "t.co", "goo.gl", "ow.ly", "is.gd", "buff.ly", "tiny.cc", "rb.gy",
}
