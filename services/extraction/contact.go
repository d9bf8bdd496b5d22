package extraction

import (
	"regexp"
	"strings"

	"driveline/models"
)

var (
	namePhoneRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)[,\s]+(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`)
	nameOnlyRe  = regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)`)
	phoneOnlyRe = regexp.MustCompile(`(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`)
)

// parseContact matches a capitalized multi-word name adjacent to a 10-digit
// phone number in common punctuation variants, then falls back to matching
// either field alone.
func parseContact(text string) models.ContactResult {
	if m := namePhoneRe.FindStringSubmatch(text); m != nil {
		return models.ContactResult{
			Name:  strings.TrimSpace(m[1]),
			Phone: strings.TrimSpace(m[2]),
		}
	}

	var res models.ContactResult
	if m := nameOnlyRe.FindStringSubmatch(text); m != nil {
		res.Name = strings.TrimSpace(m[1])
	}
	if m := phoneOnlyRe.FindStringSubmatch(text); m != nil {
		res.Phone = strings.TrimSpace(m[1])
	}
	return res
}
