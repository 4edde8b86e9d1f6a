package shifttype

import "context"

// ShiftTypeService manages the user's shift type catalog.
type ShiftTypeService interface {
	Create(ctx context.Context, req SaveShiftTypeRequest) (ShiftTypeResponse, error)
	Get(ctx context.Context, id string) (ShiftTypeResponse, error)
	List(ctx context.Context) ([]ShiftTypeResponse, error)
	Update(ctx context.Context, id string, req SaveShiftTypeRequest) (ShiftTypeResponse, error)

	// Delete removes the type and nullifies the reference on its shifts.
	// Shifts themselves are never deleted.
	Delete(ctx context.Context, id string) error
}
