package availability

import (
	"context"
	"fmt"
	"time"

	instructorRepo "driveline/database/repository/instructor"
	recordsRepo "driveline/database/repository/records"
	"driveline/models"
	"driveline/utils"

	"go.uber.org/zap"
)

// Gateway wraps the instructor directory and the calendar back-end. Read
// operations degrade to empty results on failure; only booking submission
// surfaces an error to the caller.
type Gateway interface {
	ListActiveInstructors(ctx context.Context) []models.Instructor
	ListFreeSlots(ctx context.Context, instructor models.Instructor, date string) []models.Slot
	IsTimeFree(ctx context.Context, instructor models.Instructor, date, start string) bool
	SubmitPendingBooking(ctx context.Context, req models.BookingRequest) error
}

// ReminderScheduler enqueues a lesson reminder for a submitted booking.
type ReminderScheduler interface {
	ScheduleLessonReminder(record models.BookingRecord) error
}

// DefaultGateway composes the Mongo instructor directory with a calendar
// API. Records and Reminders are optional side channels fed on successful
// submission; their failures are logged, never surfaced.
type DefaultGateway struct {
	Instructors instructorRepo.InstructorRepository
	Calendar    CalendarAPI
	Records     recordsRepo.BookingRecordRepository
	Reminders   ReminderScheduler

	WorkingHoursStart int
	WorkingHoursEnd   int
	SlotMinutes       int
}

func (g *DefaultGateway) ListActiveInstructors(ctx context.Context) []models.Instructor {
	instructors, err := g.Instructors.ListActive(ctx)
	if err != nil {
		utils.GetLogger().Error("failed to list instructors", zap.Error(err))
		return nil
	}
	return instructors
}

func (g *DefaultGateway) ListFreeSlots(ctx context.Context, instructor models.Instructor, date string) []models.Slot {
	busy, err := g.Calendar.ListBusy(ctx, instructor.CalendarID, date)
	if err != nil {
		utils.GetLogger().Error("failed to fetch calendar events",
			zap.String("instructor", instructor.Name), zap.String("date", date), zap.Error(err))
		return nil
	}
	return buildFreeSlots(g.WorkingHoursStart, g.WorkingHoursEnd, g.SlotMinutes, busy)
}

func (g *DefaultGateway) IsTimeFree(ctx context.Context, instructor models.Instructor, date, start string) bool {
	busy, err := g.Calendar.ListBusy(ctx, instructor.CalendarID, date)
	if err != nil {
		utils.GetLogger().Error("failed to check calendar availability",
			zap.String("instructor", instructor.Name), zap.String("date", date), zap.Error(err))
		return false
	}
	startMin, ok := minutesOfDay(start)
	if !ok {
		return false
	}
	endMin := startMin + g.SlotMinutes
	if startMin < g.WorkingHoursStart*60 || endMin > g.WorkingHoursEnd*60 {
		return false
	}
	for _, b := range busy {
		if overlaps(startMin, endMin, b.Start, b.End) {
			return false
		}
	}
	return true
}

func (g *DefaultGateway) SubmitPendingBooking(ctx context.Context, req models.BookingRequest) error {
	if err := g.Calendar.InsertPendingLesson(ctx, req); err != nil {
		return fmt.Errorf("failed to create pending lesson: %w", err)
	}

	record := models.BookingRecord{
		InstructorEmail: req.InstructorEmail,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		StudentName:     req.StudentName,
		StudentPhone:    req.StudentPhone,
		Status:          "pending_approval",
		CreatedAt:       time.Now(),
	}
	if g.Records != nil {
		id, err := g.Records.Create(ctx, record)
		if err != nil {
			utils.GetLogger().Error("failed to persist booking record", zap.Error(err))
		} else {
			record.ID = id
		}
	}
	if g.Reminders != nil {
		if err := g.Reminders.ScheduleLessonReminder(record); err != nil {
			utils.GetLogger().Error("failed to schedule lesson reminder", zap.Error(err))
		}
	}
	return nil
}
