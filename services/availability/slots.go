package availability

import (
	"fmt"
	"strconv"
	"strings"

	"driveline/models"
)

// BusyInterval is an occupied span within one day, minutes since midnight.
type BusyInterval struct {
	Start int
	End   int
}

// buildFreeSlots generates fixed-width slots inside the working-hours
// window and drops any slot overlapping a busy interval by any amount.
func buildFreeSlots(startHour, endHour, slotMinutes int, busy []BusyInterval) []models.Slot {
	if slotMinutes <= 0 {
		return nil
	}
	var free []models.Slot
	for start := startHour * 60; start+slotMinutes <= endHour*60; start += slotMinutes {
		end := start + slotMinutes
		blocked := false
		for _, b := range busy {
			if overlaps(start, end, b.Start, b.End) {
				blocked = true
				break
			}
		}
		if !blocked {
			free = append(free, models.Slot{
				Start: formatMinutes(start),
				End:   formatMinutes(end),
			})
		}
	}
	return free
}

func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// minutesOfDay parses HH:MM into minutes since midnight.
func minutesOfDay(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
