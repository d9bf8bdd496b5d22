package dialogue

import (
	"regexp"
	"strings"
)

// bookingVocabRe matches booking vocabulary by word stem, so "booking",
// "slots" and "availability" route the same as their base words.
var bookingVocabRe = regexp.MustCompile(`\b(book|schedul|appointment|reserv|lesson|slot|avail|instructor|time)`)

// isBookingMessage decides whether an idle-session message enters the
// booking flow.
func isBookingMessage(text string) bool {
	return bookingVocabRe.MatchString(strings.ToLower(text))
}
