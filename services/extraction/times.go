package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clock is a wall-clock time of day.
type clock struct {
	hour   int
	minute int
}

func (c clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

func (c clock) add(d time.Duration) clock {
	total := c.hour*60 + c.minute + int(d.Minutes())
	total %= 24 * 60
	return clock{hour: total / 60, minute: total % 60}
}

var (
	meridiemRe = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)`)
	colonRe    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	bareHourRe = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// parseClockTime resolves 12-hour, 24-hour, and "noon" style expressions.
func parseClockTime(text string) (clock, bool) {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "noon") {
		return clock{hour: 12}, true
	}
	if strings.Contains(lower, "midnight") {
		return clock{}, true
	}
	if m := meridiemRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return clock{}, false
		}
		if hour == 12 {
			hour = 0
		}
		if strings.HasPrefix(m[3], "p") {
			hour += 12
		}
		return clock{hour: hour, minute: minute}, true
	}
	if m := colonRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return clock{}, false
		}
		return clock{hour: hour, minute: minute}, true
	}

	return clock{}, false
}

// parseBareHour is the loose pass: a bare 1-8 is read as afternoon, 9-23
// taken literally.
func parseBareHour(text string) (clock, bool) {
	m := bareHourRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return clock{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	if hour < 1 || hour > 23 {
		return clock{}, false
	}
	if hour <= 8 {
		hour += 12
	}
	return clock{hour: hour}, true
}
