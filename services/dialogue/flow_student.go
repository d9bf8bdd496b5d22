// File: services/dialogue/flow_student.go
package dialogue

import (
	"context"

	"driveline/models"
	"driveline/utils"

	"go.uber.org/zap"
)

// handleAwaitingStudentInfo collects the student's name and phone,
// accumulating partial answers across turns and asking specifically for
// whichever piece is still missing.
func handleAwaitingStudentInfo(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	contact := e.Extractor.ExtractContact(ctx, msg)

	mutated := false
	if contact.Name != "" && session.Data.StudentName == "" {
		session.Data.StudentName = contact.Name
		mutated = true
	}
	if contact.Phone != "" && session.Data.StudentPhone == "" {
		session.Data.StudentPhone = contact.Phone
		mutated = true
	}

	switch {
	case session.Data.StudentName == "" && session.Data.StudentPhone == "":
		return turnOutcome{reply: replyStudentInfoPrompt, mutated: mutated}
	case session.Data.StudentName == "":
		return turnOutcome{reply: replyNamePrompt, mutated: mutated}
	case session.Data.StudentPhone == "":
		return turnOutcome{reply: replyPhonePrompt, mutated: mutated}
	}

	session.State = models.StateAwaitingConfirmation
	return turnOutcome{reply: replySummary(session.Data), mutated: true}
}

var (
	affirmatives = map[string]bool{
		"yes": true, "yeah": true, "yep": true, "yup": true, "sure": true,
		"confirm": true, "correct": true, "proceed": true, "ok": true,
		"okay": true, "book it": true, "yes please": true,
	}
	negatives = map[string]bool{
		"no": true, "nope": true, "nah": true, "cancel": true,
		"wrong": true, "don't": true, "do not": true, "no thanks": true,
	}
)

// handleAwaitingConfirmation submits or abandons the booking. On a gateway
// failure the session stays put so the user can retry without re-entering
// anything.
func handleAwaitingConfirmation(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	n := normalized(msg)
	confirmed := affirmatives[n]
	declined := negatives[n]
	if !confirmed && !declined {
		if intent := e.Extractor.ClassifyIntent(ctx, msg, []string{"yes", "no"}); intent.Resolved {
			confirmed = intent.Option == "yes"
			declined = intent.Option == "no"
		}
	}

	switch {
	case confirmed:
		req := models.BookingRequest{
			InstructorEmail: session.Data.Instructor.Email,
			Date:            session.Data.Date,
			StartTime:       session.Data.StartTime,
			EndTime:         session.Data.EndTime,
			StudentName:     session.Data.StudentName,
			StudentPhone:    session.Data.StudentPhone,
		}
		if err := e.Gateway.SubmitPendingBooking(ctx, req); err != nil {
			utils.GetLogger().Error("booking submission failed",
				zap.String("sessionId", session.ID), zap.Error(err))
			return turnOutcome{reply: replySubmitFailed}
		}
		return turnOutcome{reply: replyBooked(session.Data), clear: true}
	case declined:
		return turnOutcome{reply: replyDeclined, clear: true}
	default:
		return turnOutcome{reply: replyConfirmHint}
	}
}
