package shifttype

import "context"

// ShiftTypeRepository defines data access for shift types.
type ShiftTypeRepository interface {
	Create(ctx context.Context, t ShiftType) (ShiftType, error)
	GetByID(ctx context.Context, id string) (ShiftType, error)
	List(ctx context.Context) ([]ShiftType, error)
	Update(ctx context.Context, t ShiftType) error

	// Delete removes the type. Callers must nullify shift references in
	// the same transaction (ShiftRepository.ClearShiftType).
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int, error)
}
