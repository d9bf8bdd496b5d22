package dialogue

import (
	"fmt"
	"strings"

	"driveline/models"
)

const (
	replyPromptForInput = "Please type a message so I can help you."

	replyGenericFailure = "Sorry, something went wrong on my end. Please try again in a moment."

	replyChooseAction = "Great, let's book a driving lesson! Would you like to:\n" +
		"1. See all available slots for a date\n" +
		"2. Choose an instructor first\n" +
		"Reply with 1 or 2."

	replyDatePrompt = "Which date works for you? You can say things like \"tomorrow\", \"next Friday\", \"after 10 days\" or \"January 20\"."

	replyDateUnclear = "Sorry, I couldn't work out that date. Try \"tomorrow\", \"next Monday\", \"after 10 days\" or a date like \"January 20\"."

	replyTimeCheck = "Do you already have a time in mind?\n" +
		"1. See all available times\n" +
		"2. Tell me a specific time\n" +
		"You can also just type a time like \"10 AM\"."

	replySpecificTimePrompt = "What time would you like? For example \"10 AM\", \"2:30 PM\" or \"noon\"."

	replyTimeUnclear = "Sorry, I couldn't work out that time. Try something like \"10 AM\", \"2:30 PM\" or \"noon\"."

	replyStudentInfoPrompt = "Almost done! Please share the student's full name and phone number, e.g. \"John Doe, 416-555-1234\"."

	replyNamePrompt = "Thanks! I still need the student's full name, e.g. \"John Doe\"."

	replyPhonePrompt = "Thanks! I still need a phone number, e.g. \"416-555-1234\"."

	replyConfirmHint = "Please reply \"yes\" to confirm the booking or \"no\" to cancel."

	replyCancelled = "No problem, I've cleared that booking. Say \"book a lesson\" whenever you'd like to start again."

	replyDeclined = "Okay, I won't book that lesson. Say \"book a lesson\" if you change your mind."

	replySubmitFailed = "I'm sorry — I couldn't submit your booking just now. Nothing was lost; please reply \"yes\" to try again."

	replyNoInstructors = "I'm sorry, I can't reach our instructor list right now. Please try again in a moment."

	replyResumeNote = "\n\n(Your booking is saved — say \"continue\" whenever you're ready to pick up where we left off.)"
)

func replyDateChosen(formatted string) string {
	return fmt.Sprintf("Got it — %s.\n\n%s", formatted, replyTimeCheck)
}

func replyInstructorPrompt(instructors []models.Instructor) string {
	var sb strings.Builder
	sb.WriteString("Which instructor would you like?\n")
	for i, ins := range instructors {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, ins.Name)
	}
	sb.WriteString("Reply with a number or a name.")
	return sb.String()
}

func replySlotList(data models.BookingData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are the available times for %s:\n", data.DateFormatted)
	for _, slot := range data.OfferedSlots {
		if slot.Instructor != nil {
			fmt.Fprintf(&sb, "%d. %s - %s with %s\n", slot.Index, slot.Start, slot.End, slot.Instructor.Name)
		} else {
			fmt.Fprintf(&sb, "%d. %s - %s\n", slot.Index, slot.Start, slot.End)
		}
	}
	fmt.Fprintf(&sb, "Reply with a number between 1 and %d.", len(data.OfferedSlots))
	return sb.String()
}

func replyOutOfRange(max int) string {
	return fmt.Sprintf("Please pick a number between 1 and %d.", max)
}

func replyTimeTaken(start string) string {
	return fmt.Sprintf("Unfortunately %s is already taken. You can try another time, or say \"see all\" for the open slots.", start)
}

func replyNoSlots(formatted string) string {
	return fmt.Sprintf("I'm sorry, there are no free slots on %s. Please give me another date.", formatted)
}

func replySummary(data models.BookingData) string {
	instructor := ""
	if data.Instructor != nil {
		instructor = data.Instructor.Name
	}
	return fmt.Sprintf("Here's your booking:\n"+
		"📅 Date: %s\n"+
		"🕐 Time: %s - %s\n"+
		"👤 Instructor: %s\n"+
		"🎓 Student: %s (%s)\n\n"+
		"Shall I book it? (yes/no)",
		data.DateFormatted, data.StartTime, data.EndTime, instructor, data.StudentName, data.StudentPhone)
}

func replyBooked(data models.BookingData) string {
	instructor := ""
	if data.Instructor != nil {
		instructor = data.Instructor.Name
	}
	return fmt.Sprintf("✅ All set! Your lesson with %s on %s at %s is booked, pending instructor approval. See you then, %s!",
		instructor, data.DateFormatted, data.StartTime, data.StudentName)
}

// promptFor re-issues the state-specific prompt, used by the resume escape.
func promptFor(session *models.ChatSession) string {
	switch session.State {
	case models.StateAwaitingAction:
		return replyChooseAction
	case models.StateAwaitingInstructor:
		return "Let's continue — which instructor would you like? Reply with a number or a name."
	case models.StateAwaitingDate, models.StateAwaitingDateAllSlots:
		return replyDatePrompt
	case models.StateAwaitingTimeCheck:
		return replyTimeCheck
	case models.StateAwaitingSlotSelection, models.StateAwaitingSlotFromAll:
		if len(session.Data.OfferedSlots) > 0 {
			return replySlotList(session.Data)
		}
		return replyTimeCheck
	case models.StateAwaitingSpecificTime:
		return replySpecificTimePrompt
	case models.StateAwaitingStudentInfo:
		return replyStudentInfoPrompt
	case models.StateAwaitingConfirmation:
		return replySummary(session.Data)
	default:
		return replyChooseAction
	}
}
