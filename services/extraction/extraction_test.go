package extraction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday, fixed so relative expressions resolve deterministically.
var refNow = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

func newTestExtractor() *DefaultExtractor {
	ex := NewDefaultExtractor(nil, time.Hour)
	ex.Now = func() time.Time { return refNow }
	return ex
}

func TestExtractDate(t *testing.T) {
	ex := newTestExtractor()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		resolved bool
		date     string
	}{
		{name: "tomorrow", text: "I'd like a lesson tomorrow", resolved: true, date: "2025-03-13"},
		{name: "after N days", text: "after 10 days works for me", resolved: true, date: "2025-03-22"},
		{name: "in N weeks", text: "in 2 weeks please", resolved: true, date: "2025-03-26"},
		{name: "next weekday", text: "how about next monday", resolved: true, date: "2025-03-17"},
		{name: "next same weekday skips today", text: "next wednesday", resolved: true, date: "2025-03-19"},
		{name: "this weekday", text: "this friday", resolved: true, date: "2025-03-14"},
		{name: "this same weekday is today", text: "this wednesday", resolved: true, date: "2025-03-12"},
		{name: "iso date", text: "2025-04-01", resolved: true, date: "2025-04-01"},
		{name: "month day", text: "March 20th sounds good", resolved: true, date: "2025-03-20"},
		{name: "day of month", text: "the 20th of March", resolved: true, date: "2025-03-20"},
		{name: "month day with year", text: "january 5, 2026", resolved: true, date: "2026-01-05"},
		{name: "today", text: "can I come in today", resolved: true, date: "2025-03-12"},
		{name: "impossible day rolls over", text: "February 30"},
		{name: "no date at all", text: "whenever really"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ex.ExtractDate(ctx, tt.text)
			assert.Equal(t, tt.resolved, res.Resolved)
			assert.Equal(t, tt.date, res.Date)
		})
	}
}

func TestExtractDateFormatted(t *testing.T) {
	ex := newTestExtractor()

	res := ex.ExtractDate(context.Background(), "next monday")
	assert.True(t, res.Resolved)
	assert.Equal(t, "Monday, March 17, 2025", res.Formatted)
}

// "next <weekday>" must land strictly after the reference day no matter
// which weekday the reference falls on.
func TestNextWeekdayNeverToday(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		now := refNow.AddDate(0, 0, offset)
		res, ok := parseNaturalDate("next monday", now)
		assert.True(t, ok)

		resolved, err := time.Parse("2006-01-02", res.Date)
		assert.NoError(t, err)
		assert.Equal(t, time.Monday, resolved.Weekday())
		assert.True(t, resolved.After(now.Truncate(24*time.Hour)),
			"reference %s resolved to %s", now.Format("2006-01-02"), res.Date)
	}
}

func TestExtractTime(t *testing.T) {
	ex := newTestExtractor()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		resolved bool
		start    string
		end      string
	}{
		{name: "morning meridiem", text: "10 AM", resolved: true, start: "10:00", end: "11:00"},
		{name: "afternoon with minutes", text: "2:30 PM please", resolved: true, start: "14:30", end: "15:30"},
		{name: "noon", text: "noon works", resolved: true, start: "12:00", end: "13:00"},
		{name: "24 hour clock", text: "14:00", resolved: true, start: "14:00", end: "15:00"},
		{name: "12 pm is noon", text: "12pm", resolved: true, start: "12:00", end: "13:00"},
		{name: "12 am is midnight", text: "12 am", resolved: true, start: "00:00", end: "01:00"},
		{name: "bare hour rejected by strict pass", text: "at 3"},
		{name: "no time", text: "sometime soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ex.ExtractTime(ctx, tt.text)
			assert.Equal(t, tt.resolved, res.Resolved)
			assert.Equal(t, tt.start, res.Start)
			assert.Equal(t, tt.end, res.End)
		})
	}
}

func TestExtractTimeLoose(t *testing.T) {
	ex := newTestExtractor()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		resolved bool
		start    string
	}{
		{name: "small bare hour reads afternoon", text: "at 3", resolved: true, start: "15:00"},
		{name: "large bare hour reads literal", text: "10", resolved: true, start: "10:00"},
		{name: "strict result still wins", text: "3 pm", resolved: true, start: "15:00"},
		{name: "hour out of range", text: "at 25"},
		{name: "no number", text: "later maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ex.ExtractTimeLoose(ctx, tt.text)
			assert.Equal(t, tt.resolved, res.Resolved)
			assert.Equal(t, tt.start, res.Start)
		})
	}
}

func TestExtractBoundedNumber(t *testing.T) {
	ex := newTestExtractor()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		min, max int
		resolved bool
		value    int
	}{
		{name: "bare digit", text: "2", min: 1, max: 5, resolved: true, value: 2},
		{name: "digit with ordinal suffix", text: "the 3rd", min: 1, max: 5, resolved: true, value: 3},
		{name: "ordinal word", text: "the third one", min: 1, max: 5, resolved: true, value: 3},
		{name: "cardinal word", text: "number five", min: 1, max: 5, resolved: true, value: 5},
		{name: "digit in sentence", text: "option 2 please!", min: 1, max: 5, resolved: true, value: 2},
		{name: "above range", text: "7", min: 1, max: 5},
		{name: "below range", text: "0", min: 1, max: 5},
		{name: "no number", text: "the best one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ex.ExtractBoundedNumber(ctx, tt.text, tt.min, tt.max)
			assert.Equal(t, tt.resolved, res.Resolved)
			assert.Equal(t, tt.value, res.Value)
		})
	}
}

func TestExtractContact(t *testing.T) {
	ex := newTestExtractor()
	ctx := context.Background()

	tests := []struct {
		name  string
		text  string
		cname string
		phone string
	}{
		{name: "name comma phone", text: "Jane Doe, 416-555-1234", cname: "Jane Doe", phone: "416-555-1234"},
		{name: "name then bracketed phone", text: "Jane Doe (416) 555-1234", cname: "Jane Doe", phone: "(416) 555-1234"},
		{name: "name only", text: "My name is Jane Doe", cname: "Jane Doe"},
		{name: "phone only", text: "4165551234", phone: "4165551234"},
		{name: "neither", text: "i'd rather not say"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ex.ExtractContact(ctx, tt.text)
			assert.Equal(t, tt.cname, res.Name)
			assert.Equal(t, tt.phone, res.Phone)
		})
	}
}

func TestClassifyIntent(t *testing.T) {
	ex := newTestExtractor()
	ctx := context.Background()
	options := []string{"see all available slots", "choose an instructor"}

	tests := []struct {
		name     string
		text     string
		resolved bool
		option   string
	}{
		{name: "exact match", text: "choose an instructor", resolved: true, option: "choose an instructor"},
		{name: "word overlap", text: "show me all the slots", resolved: true, option: "see all available slots"},
		{name: "single keyword", text: "an instructor please", resolved: true, option: "choose an instructor"},
		{name: "no overlap", text: "purple monkeys"},
		{name: "empty message", text: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ex.ClassifyIntent(ctx, tt.text, options)
			assert.Equal(t, tt.resolved, res.Resolved)
			assert.Equal(t, tt.option, res.Option)
		})
	}
}
