package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
)

// DefaultShiftTypes is the catalog seeded on first run. Users can rename
// or delete them freely afterwards.
func DefaultShiftTypes() []shifttype.ShiftType {
	return []shifttype.ShiftType{
		{Name: "Early shift", ColorHex: "#FFA500"},
		{Name: "Late shift", ColorHex: "#0000FF"},
		{Name: "Night shift", ColorHex: "#800080"},
	}
}

// SeedDefaultShiftTypes inserts the default catalog into an empty
// database. A non-empty catalog is left untouched.
func SeedDefaultShiftTypes(ctx context.Context, repo shifttype.ShiftTypeRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count shift types: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, t := range DefaultShiftTypes() {
		if _, err := repo.Create(ctx, t); err != nil {
			return fmt.Errorf("failed to seed shift type %q: %w", t.Name, err)
		}
	}

	slog.Info("Seeded default shift types")
	return nil
}
