// File: services/dialogue/flow_booking.go
package dialogue

import (
	"context"
	"strings"

	"driveline/models"
)

const (
	optionSeeAllSlots     = "see all available slots"
	optionChooseInstructor = "choose an instructor"
	optionSeeAllTimes     = "see all available times"
	optionSpecificTime    = "a specific time"
)

// handleAwaitingAction branches between the all-slots-first and the
// instructor-first paths.
func handleAwaitingAction(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	choice := 0
	if n := e.Extractor.ExtractBoundedNumber(ctx, msg, 1, 2); n.Resolved {
		choice = n.Value
	} else if intent := e.Extractor.ClassifyIntent(ctx, msg, []string{optionSeeAllSlots, optionChooseInstructor}); intent.Resolved {
		if intent.Option == optionSeeAllSlots {
			choice = 1
		} else {
			choice = 2
		}
	}

	switch choice {
	case 1:
		session.State = models.StateAwaitingDateAllSlots
		return turnOutcome{reply: replyDatePrompt, mutated: true}
	case 2:
		instructors := e.Gateway.ListActiveInstructors(ctx)
		if len(instructors) == 0 {
			return turnOutcome{reply: replyNoInstructors}
		}
		session.State = models.StateAwaitingInstructor
		return turnOutcome{reply: replyInstructorPrompt(instructors), mutated: true}
	default:
		return turnOutcome{reply: replyChooseAction}
	}
}

// handleAwaitingInstructor resolves an instructor by list number or fuzzy
// name match.
func handleAwaitingInstructor(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	instructors := e.Gateway.ListActiveInstructors(ctx)
	if len(instructors) == 0 {
		return turnOutcome{reply: replyNoInstructors}
	}

	var chosen *models.Instructor
	if n := e.Extractor.ExtractBoundedNumber(ctx, msg, 1, len(instructors)); n.Resolved {
		chosen = &instructors[n.Value-1]
	} else {
		chosen = matchInstructorByName(msg, instructors)
	}
	if chosen == nil {
		return turnOutcome{reply: replyInstructorPrompt(instructors)}
	}

	session.Data.Instructor = chosen
	session.State = models.StateAwaitingDate
	return turnOutcome{reply: replyDatePrompt, mutated: true}
}

// matchInstructorByName does a case-insensitive match on the full name or
// any name part.
func matchInstructorByName(msg string, instructors []models.Instructor) *models.Instructor {
	lower := strings.ToLower(msg)
	for i, ins := range instructors {
		full := strings.ToLower(ins.Name)
		if strings.Contains(lower, full) {
			return &instructors[i]
		}
		for _, part := range strings.Fields(full) {
			if containsToken(lower, part) {
				return &instructors[i]
			}
		}
	}
	return nil
}

func containsToken(text, token string) bool {
	for _, w := range strings.Fields(text) {
		if strings.Trim(w, ".,!?") == token {
			return true
		}
	}
	return false
}

// handleAwaitingDate collects the lesson date for the instructor-first path.
func handleAwaitingDate(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	date := e.Extractor.ExtractDate(ctx, msg)
	if !date.Resolved {
		return turnOutcome{reply: replyDateUnclear}
	}

	session.Data.Date = date.Date
	session.Data.DateFormatted = date.Formatted
	session.State = models.StateAwaitingTimeCheck
	return turnOutcome{reply: replyDateChosen(date.Formatted), mutated: true}
}

// handleAwaitingTimeCheck either validates a time already present in the
// message or branches between listing slots and asking for a specific time.
func handleAwaitingTimeCheck(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	if t := e.Extractor.ExtractTime(ctx, msg); t.Resolved {
		return bindTimeIfFree(ctx, e, session, t)
	}

	choice := 0
	if n := e.Extractor.ExtractBoundedNumber(ctx, msg, 1, 2); n.Resolved {
		choice = n.Value
	} else if intent := e.Extractor.ClassifyIntent(ctx, msg, []string{optionSeeAllTimes, optionSpecificTime}); intent.Resolved {
		if intent.Option == optionSeeAllTimes {
			choice = 1
		} else {
			choice = 2
		}
	}

	switch choice {
	case 1:
		slots := e.Gateway.ListFreeSlots(ctx, *session.Data.Instructor, session.Data.Date)
		if len(slots) == 0 {
			session.State = models.StateAwaitingDate
			return turnOutcome{reply: replyNoSlots(session.Data.DateFormatted), mutated: true}
		}
		offered := make([]models.OfferedSlot, len(slots))
		for i, slot := range slots {
			offered[i] = models.OfferedSlot{Slot: slot, Index: i + 1}
		}
		session.Data.OfferedSlots = offered
		session.State = models.StateAwaitingSlotSelection
		return turnOutcome{reply: replySlotList(session.Data), mutated: true}
	case 2:
		session.State = models.StateAwaitingSpecificTime
		return turnOutcome{reply: replySpecificTimePrompt, mutated: true}
	default:
		return turnOutcome{reply: replyTimeCheck}
	}
}

// handleAwaitingSlotSelection resolves a numbered choice, or a restated
// time that matches one of the listed slots.
func handleAwaitingSlotSelection(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	offered := session.Data.OfferedSlots
	if n := e.Extractor.ExtractBoundedNumber(ctx, msg, 1, len(offered)); n.Resolved {
		return bindOfferedSlot(session, offered[n.Value-1])
	}
	if t := e.Extractor.ExtractTime(ctx, msg); t.Resolved {
		for _, slot := range offered {
			if slot.Start == t.Start {
				return bindOfferedSlot(session, slot)
			}
		}
	}
	return turnOutcome{reply: replyOutOfRange(len(offered))}
}

// handleAwaitingSpecificTime resolves a stated time, with the looser
// second-pass extraction, and validates it against the calendar.
func handleAwaitingSpecificTime(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	t := e.Extractor.ExtractTime(ctx, msg)
	if !t.Resolved {
		t = e.Extractor.ExtractTimeLoose(ctx, msg)
	}
	if !t.Resolved {
		return turnOutcome{reply: replyTimeUnclear}
	}
	return bindTimeIfFree(ctx, e, session, t)
}

func bindTimeIfFree(ctx context.Context, e *Engine, session *models.ChatSession, t models.TimeResult) turnOutcome {
	if !e.Gateway.IsTimeFree(ctx, *session.Data.Instructor, session.Data.Date, t.Start) {
		return turnOutcome{reply: replyTimeTaken(t.Start)}
	}
	session.Data.StartTime = t.Start
	session.Data.EndTime = t.End
	session.State = models.StateAwaitingStudentInfo
	return turnOutcome{reply: replyStudentInfoPrompt, mutated: true}
}

func bindOfferedSlot(session *models.ChatSession, slot models.OfferedSlot) turnOutcome {
	session.Data.StartTime = slot.Start
	session.Data.EndTime = slot.End
	if slot.Instructor != nil {
		session.Data.Instructor = slot.Instructor
	}
	session.State = models.StateAwaitingStudentInfo
	return turnOutcome{reply: replyStudentInfoPrompt, mutated: true}
}
