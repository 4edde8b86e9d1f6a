package template

import (
	"fmt"
	"time"
)

// ShiftTemplate is a reusable preset for quickly starting a typical shift.
type ShiftTemplate struct {
	ID                   string
	Name                 string
	ShiftTypeID          *string
	DefaultStartHour     int
	DefaultStartMinute   int
	DefaultDurationHours float64
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// FormattedStartTime renders the default start as HH:MM.
func (t *ShiftTemplate) FormattedStartTime() string {
	return fmt.Sprintf("%02d:%02d", t.DefaultStartHour, t.DefaultStartMinute)
}
