package models

// Slot is a bookable interval on a given date, HH:MM 24-hour form.
// Slots are ephemeral: recomputed on every availability query.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OfferedSlot is a slot as rendered to the user, tagged with its 1-based
// display index and, in the all-instructors flow, the owning instructor.
type OfferedSlot struct {
	Slot
	Index      int         `json:"index"`
	Instructor *Instructor `json:"instructor,omitempty"`
}
