// Package report defines the common types produced by an identity lookup.
package report

import (
	"errors"
	"time"
)

// Common errors returned by source adapters.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrRateLimited     = errors.New("rate limited")
)

// Risk buckets a continuous judgment into a discrete, presentable tier.
type Risk string

// Phone country risk tiers, ordered from worst to best.
const (
	RiskVeryHigh Risk = "very_high"
	RiskHigh     Risk = "high"
	RiskModerate Risk = "moderate"
	RiskTrusted  Risk = "trusted"
)

// Confidence describes how sure a classifier is about a resolved identity.
type Confidence string

// Provider confidence tiers.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Security describes the security posture of a resolved email provider.
type Security string

// Email provider security tiers.
const (
	SecurityVeryHigh Security = "very_high"
	SecurityHigh     Security = "high"
	SecurityMedium   Security = "medium"
	SecurityLow      Security = "low"
)

// LineType is the phone line category derived from numbering-plan rules.
type LineType string

// Phone line types.
const (
	LineMobile   LineType = "mobile"
	LineLandline LineType = "landline"
)

// BioRisk is the aggregate scam-risk tier of a biography.
// The zero value means no risk signal at all (absent, not zero).
type BioRisk string

// Bio risk tiers.
const (
	BioRiskHigh     BioRisk = "high"
	BioRiskModerate BioRisk = "moderate"
	BioRiskLow      BioRisk = "low"
)

// Severity is a presentation hint for a trust signal. It never affects the score.
type Severity string

// Signal severities.
const (
	SeverityPositive Severity = "positive"
	SeverityCaution  Severity = "caution"
	SeverityRisk     Severity = "risk"
)

// Profile is the subject record assembled by the source adapter.
// Every field except Username is optional: absent data is represented by the
// zero value, never by an error. The struct is filled progressively by
// independent fetches and is not mutated after the pipeline completes.
//
//nolint:govet // fieldalignment: intentional layout for readability
type Profile struct {
	// Identity
	Username string `json:"username"`
	UserID   string `json:"user_id,omitempty"`
	FullName string `json:"full_name,omitempty"`

	// Content
	Biography   string   `json:"biography,omitempty"`
	ExternalURL string   `json:"external_url,omitempty"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	AvatarID    string   `json:"avatar_id,omitempty"`
	BioLinks    []string `json:"bio_links,omitempty"`
	Pronouns    []string `json:"pronouns,omitempty"`

	// Counts (0 when the source omitted them)
	Followers int `json:"followers"`
	Following int `json:"following"`
	Posts     int `json:"posts"`

	// Flags
	IsPrivate          bool `json:"is_private"`
	IsVerified         bool `json:"is_verified"`
	IsBusiness         bool `json:"is_business"`
	IsProfessional     bool `json:"is_professional,omitempty"`
	IsMemorialized     bool `json:"is_memorialized,omitempty"`
	SupervisionEnabled bool `json:"supervision_enabled,omitempty"`
	HasHighlights      bool `json:"has_highlights,omitempty"`
	HasGuides          bool `json:"has_guides,omitempty"`
	HasChannel         bool `json:"has_channel,omitempty"`
	HasVideos          bool `json:"has_videos,omitempty"`
	HasClips           bool `json:"has_clips,omitempty"`

	// Business contact fields
	BusinessCategory string `json:"business_category,omitempty"`
	BusinessEmail    string `json:"business_email,omitempty"`
	BusinessPhone    string `json:"business_phone,omitempty"`
	BusinessAddress  string `json:"business_address,omitempty"`

	// Obfuscated contact fields from the lookup endpoint
	ObfuscatedEmail string `json:"obfuscated_email,omitempty"`
	ObfuscatedPhone string `json:"obfuscated_phone,omitempty"`

	// Auxiliary fields from secondary endpoints
	PublicEmail      string `json:"public_email,omitempty"`
	PublicPhone      string `json:"public_phone,omitempty"`
	PhoneCountryCode string `json:"phone_country_code,omitempty"`
	City             string `json:"city,omitempty"`
	AccountType      int    `json:"account_type,omitempty"` // 1=personal, 2=business, 3=creator

	// Age estimates
	FirstPostDate     string `json:"first_post_date,omitempty"`
	EstimatedCreation string `json:"estimated_creation,omitempty"`
	ArchiveFirstSeen  string `json:"archive_first_seen,omitempty"` // YYYY-MM-DD
	ArchiveURL        string `json:"archive_url,omitempty"`
}

// PhoneAnalysis is the derived classification of a (possibly masked) phone
// string. Immutable once produced. RiskLevel and ScoreModifier are always
// assigned together by the same classification step.
type PhoneAnalysis struct {
	Raw           string   `json:"raw,omitempty"`
	Country       string   `json:"country,omitempty"`
	CountryCode   string   `json:"country_code,omitempty"`
	RiskLevel     Risk     `json:"risk_level,omitempty"`
	LineType      LineType `json:"line_type,omitempty"`
	CarrierHint   string   `json:"carrier_hint,omitempty"`
	VisibleDigits string   `json:"visible_digits,omitempty"`
	Format        string   `json:"format,omitempty"`
	OperatorRange string   `json:"operator_range,omitempty"`
	ScoreModifier int      `json:"score_modifier"`
}

// EmailAnalysis is the derived classification of a (possibly masked) email
// string. Immutable once produced.
type EmailAnalysis struct {
	Raw            string     `json:"raw,omitempty"`
	Provider       string     `json:"provider,omitempty"`
	Confidence     Confidence `json:"confidence,omitempty"`
	TLD            string     `json:"tld,omitempty"`
	DomainType     string     `json:"domain_type,omitempty"`
	SecurityLevel  Security   `json:"security_level,omitempty"`
	LocalMinLen    int        `json:"local_min_len,omitempty"`
	LocalMaxLen    int        `json:"local_max_len,omitempty"`
	LocalFirstChar string     `json:"local_first_char,omitempty"`
	LocalLastChar  string     `json:"local_last_char,omitempty"`
	ScoreModifier  int        `json:"score_modifier"`
}

// BioAnalysis holds contact data and scam signals extracted from free text.
type BioAnalysis struct {
	Emails         []string `json:"emails,omitempty"`
	Phones         []string `json:"phones,omitempty"`
	URLs           []string `json:"urls,omitempty"`
	ScamIndicators []string `json:"scam_indicators,omitempty"`
	RiskLevel      BioRisk  `json:"risk_level,omitempty"`
}

// Signal is one evidence rule's contribution to the trust score.
// The order signals were appended in is the audit trail and is significant.
type Signal struct {
	Label    string   `json:"label"`
	Delta    int      `json:"delta"`
	Severity Severity `json:"severity"`
}

// Link is a labeled URL (reverse-image search, cross-platform lookup).
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Report is the terminal artifact of one lookup: the assembled profile, the
// derived analyses, and the bounded trust score with its signal trail.
// Created once per lookup and never mutated afterward.
type Report struct {
	Profile       *Profile       `json:"profile"`
	Phone         *PhoneAnalysis `json:"phone_analysis,omitempty"`
	Email         *EmailAnalysis `json:"email_analysis,omitempty"`
	Bio           *BioAnalysis   `json:"bio_analysis,omitempty"`
	TrustScore    int            `json:"trust_score"`
	Signals       []Signal       `json:"trust_details"`
	ReverseImage  []Link         `json:"reverse_image_urls,omitempty"`
	CrossPlatform []Link         `json:"cross_platform_urls,omitempty"`
	GeneratedAt   time.Time      `json:"generated_at"`
}
