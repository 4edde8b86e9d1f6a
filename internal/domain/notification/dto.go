package notification

import "time"

// ReminderResponse is the wire form of a pending reminder.
type ReminderResponse struct {
	ID      string       `json:"id"`
	Kind    ReminderKind `json:"kind"`
	ShiftID *string      `json:"shift_id,omitempty"`
	FireAt  time.Time    `json:"fire_at"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
}

func NewReminderResponse(r Reminder) ReminderResponse {
	return ReminderResponse{
		ID:      r.ID,
		Kind:    r.Kind,
		ShiftID: r.ShiftID,
		FireAt:  r.FireAt,
		Title:   r.Title,
		Message: r.Message,
	}
}
