package models

// Instructor is one row of the driving school's instructor directory.
// Read-only from the dialogue engine's perspective.
type Instructor struct {
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	CalendarID string `bson:"calendarId" json:"calendarId"`
	Active     bool   `bson:"active" json:"active"`
}
