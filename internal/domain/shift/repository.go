package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shifts. Implementations
// must load breaks together with their shift and cascade-delete them when
// the shift is deleted.
type ShiftRepository interface {
	// Create creates a new shift record
	Create(ctx context.Context, s Shift) (Shift, error)

	// GetByID retrieves a shift with its breaks
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetActive retrieves the currently open shift, if any.
	// Returns nil when no shift is active.
	GetActive(ctx context.Context) (*Shift, error)

	// Update updates start/end/type of an existing shift
	Update(ctx context.Context, s Shift) error

	// Delete removes a shift and all its breaks
	Delete(ctx context.Context, id string) error

	// List retrieves shifts ordered by descending start time
	List(ctx context.Context, filter ListFilter) ([]Shift, error)

	// ListByRange retrieves shifts whose start falls in [start, end)
	ListByRange(ctx context.Context, start, end time.Time) ([]Shift, error)

	// ClearShiftType nullifies the type reference on all shifts using it
	ClearShiftType(ctx context.Context, shiftTypeID string) error
}

// BreakRepository defines data access methods for breaks.
type BreakRepository interface {
	Create(ctx context.Context, b Break) (Break, error)
	GetByID(ctx context.Context, id string) (Break, error)
	Update(ctx context.Context, b Break) error
	Delete(ctx context.Context, id string) error

	// GetActiveByShift returns the open break of a shift, nil when none
	GetActiveByShift(ctx context.Context, shiftID string) (*Break, error)

	// CloseAllOpenForShift force-closes any open break at the given time.
	// Used on clock-out.
	CloseAllOpenForShift(ctx context.Context, shiftID string, end time.Time) error
}

// ListFilter narrows a shift listing.
type ListFilter struct {
	From        *time.Time
	To          *time.Time
	ShiftTypeID *string
	Limit       int
	Offset      int
}
