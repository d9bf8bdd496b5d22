package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12,
}

var cardinalWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12,
}

var digitRe = regexp.MustCompile(`\b(\d{1,3})(?:st|nd|rd|th)?\b`)

// parseCardinal resolves "5", "5th", "the fifth one", "number five".
func parseCardinal(text string) (int, bool) {
	lower := strings.ToLower(text)

	if m := digitRe.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
	}) {
		if n, ok := ordinalWords[word]; ok {
			return n, true
		}
		if n, ok := cardinalWords[word]; ok {
			return n, true
		}
	}
	return 0, false
}
