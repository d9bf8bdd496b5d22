package models

import "time"

// BookingRequest is the terminal payload handed to the availability
// gateway when the user confirms. Not retained by the dialogue engine.
type BookingRequest struct {
	InstructorEmail string `json:"instructorEmail"`
	Date            string `json:"date"`      // YYYY-MM-DD
	StartTime       string `json:"startTime"` // HH:MM
	EndTime         string `json:"endTime"`   // HH:MM
	StudentName     string `json:"studentName"`
	StudentPhone    string `json:"studentPhone"`
}

// BookingRecord is the persisted trace of a submitted booking, kept for
// operational history and reminder scheduling.
type BookingRecord struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	InstructorEmail string    `bson:"instructorEmail" json:"instructorEmail"`
	InstructorName  string    `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Date            string    `bson:"date" json:"date"`
	StartTime       string    `bson:"startTime" json:"startTime"`
	EndTime         string    `bson:"endTime" json:"endTime"`
	StudentName     string    `bson:"studentName" json:"studentName"`
	StudentPhone    string    `bson:"studentPhone" json:"studentPhone"`
	Status          string    `bson:"status" json:"status"` // "pending_approval"
	Reminded        bool      `bson:"reminded" json:"reminded"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
