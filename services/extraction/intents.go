package extraction

import "strings"

// matchIntentLocally scores each candidate option against the message by
// word overlap and returns the best match, requiring at least one hit.
func matchIntentLocally(text string, options []string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" || len(options) == 0 {
		return "", false
	}

	best := ""
	bestScore := 0
	for _, opt := range options {
		score := 0
		optLower := strings.ToLower(opt)
		if lower == optLower {
			// Exact match beats everything.
			return opt, true
		}
		for _, word := range strings.Fields(optLower) {
			if containsWord(lower, word) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = opt
		}
	}
	if bestScore == 0 {
		return "", false
	}
	return best, true
}

func containsWord(text, word string) bool {
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if w == word {
			return true
		}
	}
	return false
}
