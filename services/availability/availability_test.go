package availability

import (
	"context"
	"errors"
	"testing"

	"driveline/models"

	"github.com/stretchr/testify/assert"
)

type fakeCalendar struct {
	busy      map[string][]BusyInterval
	listErr   error
	insertErr error
	inserted  []models.BookingRequest
}

func (f *fakeCalendar) ListBusy(ctx context.Context, calendarID, date string) ([]BusyInterval, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.busy[calendarID], nil
}

func (f *fakeCalendar) InsertPendingLesson(ctx context.Context, req models.BookingRequest) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, req)
	return nil
}

type fakeInstructorRepo struct {
	instructors []models.Instructor
	err         error
}

func (f *fakeInstructorRepo) ListActive(ctx context.Context) ([]models.Instructor, error) {
	return f.instructors, f.err
}

func (f *fakeInstructorRepo) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	for i := range f.instructors {
		if f.instructors[i].Email == email {
			return &f.instructors[i], nil
		}
	}
	return nil, errors.New("not found")
}

func newTestGateway(cal *fakeCalendar) *DefaultGateway {
	return &DefaultGateway{
		Instructors: &fakeInstructorRepo{
			instructors: []models.Instructor{
				{Name: "Alice Smith", Email: "alice@school.test", CalendarID: "cal-alice", Active: true},
			},
		},
		Calendar:          cal,
		WorkingHoursStart: 9,
		WorkingHoursEnd:   18,
		SlotMinutes:       60,
	}
}

func TestBuildFreeSlots(t *testing.T) {
	tests := []struct {
		name string
		busy []BusyInterval
		want []models.Slot
	}{
		{
			name: "empty day fills the whole window",
			want: []models.Slot{
				{Start: "09:00", End: "10:00"}, {Start: "10:00", End: "11:00"},
				{Start: "11:00", End: "12:00"}, {Start: "12:00", End: "13:00"},
				{Start: "13:00", End: "14:00"}, {Start: "14:00", End: "15:00"},
				{Start: "15:00", End: "16:00"}, {Start: "16:00", End: "17:00"},
				{Start: "17:00", End: "18:00"},
			},
		},
		{
			name: "aligned event removes one slot",
			busy: []BusyInterval{{Start: 600, End: 660}}, // 10:00-11:00
			want: []models.Slot{
				{Start: "09:00", End: "10:00"},
				{Start: "11:00", End: "12:00"}, {Start: "12:00", End: "13:00"},
				{Start: "13:00", End: "14:00"}, {Start: "14:00", End: "15:00"},
				{Start: "15:00", End: "16:00"}, {Start: "16:00", End: "17:00"},
				{Start: "17:00", End: "18:00"},
			},
		},
		{
			name: "partial overlap removes both touched slots",
			busy: []BusyInterval{{Start: 630, End: 690}}, // 10:30-11:30
			want: []models.Slot{
				{Start: "09:00", End: "10:00"},
				{Start: "12:00", End: "13:00"}, {Start: "13:00", End: "14:00"},
				{Start: "14:00", End: "15:00"}, {Start: "15:00", End: "16:00"},
				{Start: "16:00", End: "17:00"}, {Start: "17:00", End: "18:00"},
			},
		},
		{
			name: "back to back event does not block the adjacent slot",
			busy: []BusyInterval{{Start: 540, End: 600}}, // 09:00-10:00
			want: []models.Slot{
				{Start: "10:00", End: "11:00"}, {Start: "11:00", End: "12:00"},
				{Start: "12:00", End: "13:00"}, {Start: "13:00", End: "14:00"},
				{Start: "14:00", End: "15:00"}, {Start: "15:00", End: "16:00"},
				{Start: "16:00", End: "17:00"}, {Start: "17:00", End: "18:00"},
			},
		},
		{
			name: "all day event empties the window",
			busy: []BusyInterval{{Start: 0, End: 24 * 60}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFreeSlots(9, 18, 60, tt.busy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsTimeFree(t *testing.T) {
	cal := &fakeCalendar{busy: map[string][]BusyInterval{
		"cal-alice": {{Start: 600, End: 660}}, // 10:00-11:00
	}}
	gw := newTestGateway(cal)
	instructor := models.Instructor{Name: "Alice Smith", CalendarID: "cal-alice"}
	ctx := context.Background()

	assert.True(t, gw.IsTimeFree(ctx, instructor, "2025-03-13", "09:00"))
	assert.False(t, gw.IsTimeFree(ctx, instructor, "2025-03-13", "10:00"))
	assert.False(t, gw.IsTimeFree(ctx, instructor, "2025-03-13", "10:30"), "partial overlap counts as taken")
	assert.True(t, gw.IsTimeFree(ctx, instructor, "2025-03-13", "11:00"))

	// Outside working hours.
	assert.False(t, gw.IsTimeFree(ctx, instructor, "2025-03-13", "08:00"))
	assert.False(t, gw.IsTimeFree(ctx, instructor, "2025-03-13", "17:30"), "lesson would run past closing")
	assert.False(t, gw.IsTimeFree(ctx, instructor, "2025-03-13", "not-a-time"))
}

func TestIsTimeFreeCalendarFailure(t *testing.T) {
	cal := &fakeCalendar{listErr: errors.New("calendar down")}
	gw := newTestGateway(cal)

	free := gw.IsTimeFree(context.Background(), models.Instructor{CalendarID: "cal-alice"}, "2025-03-13", "09:00")
	assert.False(t, free, "unreachable calendar must read as unavailable")
}

func TestListFreeSlotsCalendarFailure(t *testing.T) {
	cal := &fakeCalendar{listErr: errors.New("calendar down")}
	gw := newTestGateway(cal)

	slots := gw.ListFreeSlots(context.Background(), models.Instructor{CalendarID: "cal-alice"}, "2025-03-13")
	assert.Empty(t, slots)
}

func TestSubmitPendingBooking(t *testing.T) {
	cal := &fakeCalendar{}
	gw := newTestGateway(cal)

	req := models.BookingRequest{
		InstructorEmail: "alice@school.test",
		Date:            "2025-03-13",
		StartTime:       "09:00",
		EndTime:         "10:00",
		StudentName:     "Jane Doe",
		StudentPhone:    "416-555-1234",
	}
	err := gw.SubmitPendingBooking(context.Background(), req)
	assert.NoError(t, err)
	assert.Len(t, cal.inserted, 1)
	assert.Equal(t, "Jane Doe", cal.inserted[0].StudentName)
}

func TestSubmitPendingBookingInsertFailure(t *testing.T) {
	cal := &fakeCalendar{insertErr: errors.New("quota exceeded")}
	gw := newTestGateway(cal)

	err := gw.SubmitPendingBooking(context.Background(), models.BookingRequest{})
	assert.Error(t, err)
}
