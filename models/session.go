package models

import "time"

// SessionState enumerates the stages of the booking dialogue.
type SessionState string

const (
	StateIdle                  SessionState = "idle"
	StateAwaitingAction        SessionState = "awaiting_action"
	StateAwaitingInstructor    SessionState = "awaiting_instructor"
	StateAwaitingDate          SessionState = "awaiting_date"
	StateAwaitingTimeCheck     SessionState = "awaiting_time_check"
	StateAwaitingSlotSelection SessionState = "awaiting_slot_selection"
	StateAwaitingSpecificTime  SessionState = "awaiting_specific_time"
	StateAwaitingDateAllSlots  SessionState = "awaiting_date_for_all_slots"
	StateAwaitingSlotFromAll   SessionState = "awaiting_slot_selection_from_all"
	StateAwaitingStudentInfo   SessionState = "awaiting_student_info"
	StateAwaitingConfirmation  SessionState = "awaiting_confirmation"
)

// BookingData accumulates booking fields turn by turn. Fields are populated
// strictly in the order demanded by the session state; a field is not
// trusted until the state that collects it has been passed.
type BookingData struct {
	Instructor    *Instructor   `json:"instructor,omitempty"`
	Date          string        `json:"date,omitempty"` // YYYY-MM-DD
	DateFormatted string        `json:"dateFormatted,omitempty"`
	StartTime     string        `json:"startTime,omitempty"` // HH:MM
	EndTime       string        `json:"endTime,omitempty"`   // HH:MM
	StudentName   string        `json:"studentName,omitempty"`
	StudentPhone  string        `json:"studentPhone,omitempty"`
	OfferedSlots  []OfferedSlot `json:"offeredSlots,omitempty"`
}

// ChatSession tracks one conversation's progress through the booking flow.
type ChatSession struct {
	ID        string       `json:"sessionId"`
	State     SessionState `json:"state"`
	Data      BookingData  `json:"data"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewChatSession returns a fresh idle session for the given id.
func NewChatSession(id string) *ChatSession {
	return &ChatSession{
		ID:        id,
		State:     StateIdle,
		UpdatedAt: time.Now(),
	}
}
