package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"driveline/config"
	"driveline/models"
	"driveline/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeLessonReminder = "lesson:reminder"

// ReminderPayload is the task body for a lesson reminder.
type ReminderPayload struct {
	RecordID     string `json:"recordId"`
	StudentName  string `json:"studentName"`
	StudentPhone string `json:"studentPhone"`
	Instructor   string `json:"instructor"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
}

// ReminderScheduler enqueues lesson reminders to fire ahead of the lesson.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
	loc    *time.Location
}

func NewReminderScheduler(lead time.Duration, timezone string) (*ReminderScheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &ReminderScheduler{client: client, lead: lead, loc: loc}, nil
}

// ScheduleLessonReminder enqueues one reminder for a submitted booking.
// A lesson already inside the lead window fires immediately.
func (s *ReminderScheduler) ScheduleLessonReminder(record models.BookingRecord) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", record.Date+" "+record.StartTime, s.loc)
	if err != nil {
		return fmt.Errorf("invalid lesson start %s %s: %w", record.Date, record.StartTime, err)
	}

	payload := ReminderPayload{
		RecordID:     record.ID,
		StudentName:  record.StudentName,
		StudentPhone: record.StudentPhone,
		Instructor:   record.InstructorEmail,
		Date:         record.Date,
		StartTime:    record.StartTime,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeLessonReminder, b)
	fireAt := start.Add(-s.lead)
	var opts []asynq.Option
	if fireAt.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(fireAt))
	}
	info, err := s.client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue lesson reminder: %w", err)
	}
	utils.GetLogger().Info("lesson reminder scheduled",
		zap.String("taskId", info.ID), zap.Time("fireAt", fireAt))
	return nil
}
