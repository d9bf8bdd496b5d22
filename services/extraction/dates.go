package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"driveline/models"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var (
	afterDaysRe = regexp.MustCompile(`\b(?:after|in)\s+(\d+)\s+days?\b`)
	inWeeksRe   = regexp.MustCompile(`\bin\s+(\d+)\s+weeks?\b`)
	weekdayRe   = regexp.MustCompile(`\b(next|this)\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	isoDateRe   = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	monthDayRe  = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?\b`)
	dayMonthRe  = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(january|february|march|april|may|june|july|august|september|october|november|december)(?:,?\s*(\d{4}))?\b`)
)

// parseNaturalDate resolves relative and absolute date expressions against
// the given reference time without consulting the oracle.
func parseNaturalDate(text string, now time.Time) (models.DateResult, bool) {
	lower := strings.ToLower(text)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if strings.Contains(lower, "tomorrow") {
		return dateResult(day.AddDate(0, 0, 1)), true
	}
	if m := afterDaysRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return dateResult(day.AddDate(0, 0, n)), true
	}
	if m := inWeeksRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return dateResult(day.AddDate(0, 0, 7*n)), true
	}
	if m := weekdayRe.FindStringSubmatch(lower); m != nil {
		target := weekdays[m[2]]
		offset := (int(target) - int(day.Weekday()) + 7) % 7
		// "next Monday" is strictly after today, even when today is Monday.
		if m[1] == "next" && offset == 0 {
			offset = 7
		}
		return dateResult(day.AddDate(0, 0, offset)), true
	}
	if m := isoDateRe.FindStringSubmatch(lower); m != nil {
		if d, err := time.ParseInLocation("2006-01-02", m[1], now.Location()); err == nil {
			return dateResult(d), true
		}
	}
	if m := monthDayRe.FindStringSubmatch(lower); m != nil {
		return monthDayResult(months[m[1]], m[2], m[3], day)
	}
	if m := dayMonthRe.FindStringSubmatch(lower); m != nil {
		return monthDayResult(months[m[2]], m[1], m[3], day)
	}
	if strings.Contains(lower, "today") {
		return dateResult(day), true
	}

	return models.DateResult{}, false
}

// monthDayResult assumes the current year unless one was stated.
func monthDayResult(month time.Month, dayStr, yearStr string, today time.Time) (models.DateResult, bool) {
	dayNum, err := strconv.Atoi(dayStr)
	if err != nil || dayNum < 1 || dayNum > 31 {
		return models.DateResult{}, false
	}
	year := today.Year()
	if yearStr != "" {
		year, _ = strconv.Atoi(yearStr)
	}
	d := time.Date(year, month, dayNum, 0, 0, 0, 0, today.Location())
	if d.Day() != dayNum {
		// e.g. February 30 rolled over.
		return models.DateResult{}, false
	}
	return dateResult(d), true
}

func dateResult(d time.Time) models.DateResult {
	return models.DateResult{
		Resolved:  true,
		Date:      d.Format("2006-01-02"),
		Formatted: d.Format("Monday, January 2, 2006"),
	}
}
