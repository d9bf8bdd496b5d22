// File: services/availability/calendar.go
package availability

import (
	"context"
	"fmt"
	"time"

	"driveline/models"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarAPI is the calendar back-end consumed by the gateway.
type CalendarAPI interface {
	// ListBusy returns the occupied intervals of one calendar on a date.
	ListBusy(ctx context.Context, calendarID, date string) ([]BusyInterval, error)
	// InsertPendingLesson creates a pending-approval lesson event.
	InsertPendingLesson(ctx context.Context, req models.BookingRequest) error
}

type googleCalendarAPI struct {
	svc *calendar.Service
	loc *time.Location
}

// NewGoogleCalendarAPI builds a CalendarAPI on the Google Calendar API
// using service account credentials.
func NewGoogleCalendarAPI(keyFile, timezone string) (CalendarAPI, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", timezone, err)
	}
	svc, err := calendar.NewService(context.Background(),
		option.WithCredentialsFile(keyFile),
		option.WithScopes(calendar.CalendarScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &googleCalendarAPI{svc: svc, loc: loc}, nil
}

func (g *googleCalendarAPI) ListBusy(ctx context.Context, calendarID, date string) ([]BusyInterval, error) {
	day, err := time.ParseInLocation("2006-01-02", date, g.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	startOfDay := day
	endOfDay := day.AddDate(0, 0, 1)

	events, err := g.svc.Events.List(calendarID).
		TimeMin(startOfDay.Format(time.RFC3339)).
		TimeMax(endOfDay.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	var busy []BusyInterval
	for _, item := range events.Items {
		if item.Start == nil || item.End == nil || item.Start.DateTime == "" || item.End.DateTime == "" {
			// All-day events carry Date instead of DateTime; treat them as
			// blocking the whole working day.
			busy = append(busy, BusyInterval{Start: 0, End: 24 * 60})
			continue
		}
		start, err1 := time.Parse(time.RFC3339, item.Start.DateTime)
		end, err2 := time.Parse(time.RFC3339, item.End.DateTime)
		if err1 != nil || err2 != nil {
			continue
		}
		busy = append(busy, BusyInterval{
			Start: minutesInto(day, start.In(g.loc)),
			End:   minutesInto(day, end.In(g.loc)),
		})
	}
	return busy, nil
}

func (g *googleCalendarAPI) InsertPendingLesson(ctx context.Context, req models.BookingRequest) error {
	start, err := lessonTime(req.Date, req.StartTime, g.loc)
	if err != nil {
		return err
	}
	end, err := lessonTime(req.Date, req.EndTime, g.loc)
	if err != nil {
		return err
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Driving Lesson - %s", req.StudentName),
		Description: fmt.Sprintf("Student: %s\nPhone: %s\nStatus: Pending Approval", req.StudentName, req.StudentPhone),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
		// Yellow marks pending-approval lessons on the instructor calendar.
		ColorId: "5",
		Attendees: []*calendar.EventAttendee{
			{Email: req.InstructorEmail, ResponseStatus: "needsAction"},
		},
	}

	_, err = g.svc.Events.Insert(req.InstructorEmail, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	return err
}

func minutesInto(day, t time.Time) int {
	m := int(t.Sub(day).Minutes())
	if m < 0 {
		return 0
	}
	if m > 24*60 {
		return 24 * 60
	}
	return m
}

func lessonTime(date, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid lesson time %s %s: %w", date, hhmm, err)
	}
	return t, nil
}
