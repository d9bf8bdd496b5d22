package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"driveline/config"
	recordsRepo "driveline/database/repository/records"
	"driveline/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(records recordsRepo.BookingRecordRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeLessonReminder, handleLessonReminder(records))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleLessonReminder(records recordsRepo.BookingRecordRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}

		utils.GetLogger().Info("lesson reminder due",
			zap.String("student", p.StudentName),
			zap.String("phone", p.StudentPhone),
			zap.String("instructor", p.Instructor),
			zap.String("date", p.Date),
			zap.String("startTime", p.StartTime))

		if p.RecordID != "" {
			if err := records.MarkReminded(ctx, p.RecordID); err != nil {
				utils.GetLogger().Warn("failed to mark booking reminded",
					zap.String("recordId", p.RecordID), zap.Error(err))
			}
		}
		return nil
	}
}
