// Package redact replaces guest contact and booking details in review text
// with [REDACTED] before it leaves the machine.
package redact

import "regexp"

// Placeholder is substituted for every match.
const Placeholder = "[REDACTED]"

var patterns []*regexp.Regexp

func init() {
	raw := []string{
		// Email addresses
		`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`,
		// Payment card numbers (13-19 digits, optional space or dash groups)
		`\b(?:\d[ -]?){12,18}\d\b`,
		// Booking / confirmation / reservation references
		`(?i)\b(?:booking|confirmation|reservation)\s*(?:no\.?|number|code|ref)?\s*[:#]?\s*[A-Z\-]*\d[A-Z0-9\-]{3,}`,
		// Room numbers
		`(?i)\broom\s*(?:no\.?|number|#)?\s*\d{2,5}\b`,
		// Phone numbers, international or local
		`\+?\d{1,3}?[ .\-]?\(?\d{2,4}\)?[ .\-]\d{3,4}[ .\-]\d{3,4}\b`,
	}
	for _, r := range raw {
		patterns = append(patterns, regexp.MustCompile(r))
	}
}

// Redact replaces contact and booking patterns in text with Placeholder.
func Redact(text string) string {
	for _, p := range patterns {
		text = p.ReplaceAllString(text, Placeholder)
	}
	return text
}

// Changed reports whether Redact would alter text.
func Changed(text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
