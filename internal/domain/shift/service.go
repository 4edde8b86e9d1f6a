package shift

import (
	"context"
)

// ShiftService drives the shift lifecycle. At most one shift is active at
// any time; the toggle operations enforce that invariant.
type ShiftService interface {
	// ClockIn opens a new shift. Fails when a shift is already running.
	ClockIn(ctx context.Context, req ClockInRequest) (ShiftResponse, error)

	// ClockOut ends the active shift. Any open break is force-closed at
	// the clock-out time.
	ClockOut(ctx context.Context) (ShiftResponse, error)

	// StartBreak opens a break on the active shift
	StartBreak(ctx context.Context) (ShiftResponse, error)

	// EndBreak closes the open break on the active shift
	EndBreak(ctx context.Context) (ShiftResponse, error)

	GetActive(ctx context.Context) (*ShiftResponse, error)
	Get(ctx context.Context, id string) (ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]ShiftResponse, error)

	UpdateBreak(ctx context.Context, breakID string, req UpdateBreakRequest) (ShiftResponse, error)
	DeleteBreak(ctx context.Context, breakID string) error
}
