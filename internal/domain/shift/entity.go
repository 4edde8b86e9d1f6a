package shift

import (
	"time"
)

// Shift is a contiguous work period. EndTime is nil while the shift is
// still running. Breaks are owned by the shift and cascade on delete.
type Shift struct {
	ID          string
	StartTime   time.Time
	EndTime     *time.Time
	ShiftTypeID *string
	Breaks      []Break
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	ShiftTypeName *string
}

// Break is a pause inside a shift. It references its owner by ID only.
type Break struct {
	ID        string
	ShiftID   string
	StartTime time.Time
	EndTime   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the shift has no recorded end time.
func (s *Shift) IsActive() bool {
	return s.EndTime == nil
}

// Duration returns the gross duration at the given instant. Open shifts
// are measured against now. Never negative, even when a manual edit put
// the end before the start.
func (s *Shift) Duration(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	d := end.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// TotalBreakDuration sums the durations of all breaks at the given instant.
func (s *Shift) TotalBreakDuration(now time.Time) time.Duration {
	var total time.Duration
	for i := range s.Breaks {
		total += s.Breaks[i].Duration(now)
	}
	return total
}

// NetDuration is gross duration minus total break time, floored at zero.
func (s *Shift) NetDuration(now time.Time) time.Duration {
	net := s.Duration(now) - s.TotalBreakDuration(now)
	if net < 0 {
		return 0
	}
	return net
}

// HasActiveBreak reports whether any break is still open.
func (s *Shift) HasActiveBreak() bool {
	for i := range s.Breaks {
		if s.Breaks[i].IsActive() {
			return true
		}
	}
	return false
}

// IsActive reports whether the break has no recorded end time.
func (b *Break) IsActive() bool {
	return b.EndTime == nil
}

// Duration returns the break length at the given instant, floored at zero.
func (b *Break) Duration(now time.Time) time.Duration {
	end := now
	if b.EndTime != nil {
		end = *b.EndTime
	}
	d := end.Sub(b.StartTime)
	if d < 0 {
		return 0
	}
	return d
}
