package notification

import (
	"context"
	"time"
)

// Service receives the shift lifecycle triggers and maintains the
// reminder queue. Delivery itself is external.
type Service interface {
	OnShiftStarted(ctx context.Context, shiftID string, startedAt time.Time) error
	OnShiftEnded(ctx context.Context, shiftID string) error
	OnBreakStarted(ctx context.Context, shiftID string) error

	// OnBreakEnded re-arms the break reminder with the time remaining
	// until 6h of net work.
	OnBreakEnded(ctx context.Context, shiftID string, netWorkSoFar time.Duration, endedAt time.Time) error

	// DueReminders returns queue entries whose fire time has passed,
	// soonest first.
	DueReminders(ctx context.Context) ([]Reminder, error)

	// Acknowledge removes a delivered reminder from the queue.
	Acknowledge(ctx context.Context, id string) error
}
