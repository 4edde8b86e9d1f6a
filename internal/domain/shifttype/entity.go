package shifttype

import (
	"regexp"
	"time"
)

// ShiftType is a user-defined category for shifts, e.g. "Early", "Late",
// "Night". Deleting a type nullifies the reference on its shifts, it never
// deletes them.
type ShiftType struct {
	ID       string
	Name     string
	ColorHex string
	// HourlyRate overrides the global rate when set.
	HourlyRate *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultColorHex is used at presentation time when the stored value is
// not a valid #RRGGBB string. Invalid values are never rejected at save.
const DefaultColorHex = "#0000FF"

var colorHexRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidColorHex reports whether s is a #RRGGBB color string.
func IsValidColorHex(s string) bool {
	return colorHexRegex.MatchString(s)
}

// DisplayColor returns the stored color or the default fallback.
func (t *ShiftType) DisplayColor() string {
	if IsValidColorHex(t.ColorHex) {
		return t.ColorHex
	}
	return DefaultColorHex
}
