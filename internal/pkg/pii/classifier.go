package pii

import (
	"regexp"
	"strings"
)

// Confidence grades how likely the detected matches are real personal data.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Category tags reported in Result.DetectedTypes.
const (
	TypeEmail            = "email"
	TypePhone            = "phone"
	TypeNationalID       = "national_id"
	TypeCreditCard       = "credit_card"
	TypeIBAN             = "iban"
	TypePostalCode       = "postal_code"
	TypeDateOfBirth      = "date_of_birth"
	TypeSocialSecurity   = "social_security"
	TypePotentialName    = "potential_name"
	TypePotentialAddress = "potential_address"
)

// Result is the outcome of scanning a piece of free text. It is a value
// attached to a report at submission time and never persisted on its own.
type Result struct {
	HasPII        bool       `json:"has_pii"`
	DetectedTypes []string   `json:"detected_types"`
	Confidence    Confidence `json:"confidence"`
}

// rule is one independently evaluated category. A rule fires when any of its
// patterns has at least one match; every match counts toward the confidence
// total, but the tag is added at most once.
type rule struct {
	tag      string
	patterns []*regexp.Regexp
}

// Rules run in this fixed order, which also fixes the order of tags in
// Result.DetectedTypes regardless of where matches sit in the input.
var rules = []rule{
	{TypeEmail, compile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{TypePhone, compile(`(\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}\b`)},

	// 11-digit national identifiers (e.g. German tax ID)
	{TypeNationalID, compile(`\b\d{11}\b`)},

	// Payment-card shaped 4x4 digit groups
	{TypeCreditCard, compile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)},

	{TypeIBAN, compile(`\b[A-Z]{2}\d{2}[A-Z0-9]{10,30}\b`)},

	// US ZIP shaped groups
	{TypePostalCode, compile(`\b\d{5}(?:[-\s]\d{4})?\b`)},

	// DD.MM.YYYY / DD/MM/YYYY / DD-MM-YYYY
	{TypeDateOfBirth, compile(`\b(0?[1-9]|[12][0-9]|3[01])[./-](0?[1-9]|1[0-2])[./-](19|20)\d{2}\b`)},

	// Social security / national insurance shaped 3-2-4 groups
	{TypeSocialSecurity, compile(`\b\d{3}[-\s]?\d{2}[-\s]?\d{4}\b`)},

	// Heuristics: honorific+name or two capitalized words
	{TypePotentialName, compile(
		`(?i)\b(herr|frau|mr|mrs|ms|miss|dr|prof)\s+[A-Z][a-z]+`,
		`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\b`,
	)},

	// Heuristics: street-address phrases
	{TypePotentialAddress, compile(
		`(?i)\b\d+\s+[A-Z][a-z]+\s+(str|strasse|street|avenue|road|st|ave|rd)\b`,
		`(?i)\b(wohnhaft|wohnt|adresse|address|living at)\b`,
	)},
}

func compile(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(expr))
	}
	return compiled
}

// Classify scans text for personal-data indicators. It is pure and
// deterministic: no I/O, no state, safe for concurrent use. Empty or
// unmatchable input yields HasPII=false with low confidence.
func Classify(text string) Result {
	var detectedTypes []string
	totalMatches := 0

	for _, r := range rules {
		fired := false
		for _, pattern := range r.patterns {
			matches := pattern.FindAllString(text, -1)
			if len(matches) > 0 {
				fired = true
				totalMatches += len(matches)
			}
		}
		if fired {
			detectedTypes = append(detectedTypes, r.tag)
		}
	}

	confidence := ConfidenceLow
	hasEmail := contains(detectedTypes, TypeEmail)
	hasPhone := contains(detectedTypes, TypePhone)
	if totalMatches >= 3 || hasEmail || hasPhone {
		confidence = ConfidenceHigh
	} else if totalMatches >= 1 {
		confidence = ConfidenceMedium
	}

	return Result{
		HasPII:        len(detectedTypes) > 0,
		DetectedTypes: detectedTypes,
		Confidence:    confidence,
	}
}

// WarningMessage renders a submission warning for the detected categories,
// or an empty string when nothing was found.
func WarningMessage(result Result) string {
	if !result.HasPII {
		return ""
	}

	types := make([]string, 0, len(result.DetectedTypes))
	for _, t := range result.DetectedTypes {
		types = append(types, strings.ReplaceAll(t, "_", " "))
	}

	return "Potential personal data detected (" + strings.Join(types, ", ") + "). " +
		"Please ensure you only include necessary information for incident reporting. " +
		"Avoid names, addresses, contact details, or identification numbers unless absolutely required."
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
