package models

// Extraction results are tagged rather than nullable: callers must check
// Resolved before trusting any field. The oracle never raises; a malformed
// or missing answer comes back as the zero (unresolved) value.

// DateResult is a resolved calendar date plus a human-readable echo.
type DateResult struct {
	Resolved  bool
	Date      string // YYYY-MM-DD
	Formatted string // e.g. "Monday, January 20, 2026"
}

// TimeResult is a resolved clock time; End is Start plus the lesson duration.
type TimeResult struct {
	Resolved bool
	Start    string // HH:MM 24-hour
	End      string // HH:MM 24-hour
}

// NumberResult is a selection resolved within the offered bounds.
type NumberResult struct {
	Resolved bool
	Value    int
}

// ContactResult carries whichever of name/phone could be extracted.
type ContactResult struct {
	Name  string
	Phone string
}

// IntentResult is the best match from a bounded option set.
type IntentResult struct {
	Resolved bool
	Option   string
}
