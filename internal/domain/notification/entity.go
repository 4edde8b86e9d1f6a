package notification

import "time"

// ReminderKind identifies a scheduled reminder.
type ReminderKind string

const (
	// KindBreakReminder fires when 6h of net work are reached without a
	// break.
	KindBreakReminder ReminderKind = "break_reminder"

	// KindForgotClockOut fires after 10h of continuous active duration.
	KindForgotClockOut ReminderKind = "forgot_clock_out"

	// KindWeeklySummary is the standing weekly digest.
	KindWeeklySummary ReminderKind = "weekly_summary"
)

// Reminder is a pending delivery consumed by the external notification
// collaborator. This core only decides when and whether to fire.
type Reminder struct {
	ID        string
	Kind      ReminderKind
	ShiftID   *string
	FireAt    time.Time
	Title     string
	Message   string
	CreatedAt time.Time
}
