package notification

import (
	"context"
	"time"
)

// ReminderRepository is the queue handed to the external delivery
// collaborator.
type ReminderRepository interface {
	Schedule(ctx context.Context, r Reminder) (Reminder, error)

	// CancelByShift removes all pending reminders for a shift
	CancelByShift(ctx context.Context, shiftID string) error

	// CancelKind removes pending reminders of one kind for a shift
	CancelKind(ctx context.Context, shiftID string, kind ReminderKind) error

	// CancelStanding removes pending reminders of one kind that are not
	// tied to a shift, such as the weekly digest
	CancelStanding(ctx context.Context, kind ReminderKind) error

	// ListDue returns reminders with FireAt <= now
	ListDue(ctx context.Context, now time.Time) ([]Reminder, error)

	Delete(ctx context.Context, id string) error
}
