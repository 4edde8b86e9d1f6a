package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestShift_Duration(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	t.Run("completed shift", func(t *testing.T) {
		s := Shift{StartTime: start, EndTime: timePtr(start.Add(8 * time.Hour))}
		assert.Equal(t, 8*time.Hour, s.Duration(start.Add(24*time.Hour)))
	})

	t.Run("open shift measured against now", func(t *testing.T) {
		s := Shift{StartTime: start}
		assert.Equal(t, 3*time.Hour, s.Duration(start.Add(3*time.Hour)))
	})

	t.Run("end before start floors at zero", func(t *testing.T) {
		s := Shift{StartTime: start, EndTime: timePtr(start.Add(-time.Hour))}
		assert.Equal(t, time.Duration(0), s.Duration(start))
	})
}

func TestShift_NetDuration(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	now := start.Add(12 * time.Hour)

	t.Run("gross minus breaks", func(t *testing.T) {
		s := Shift{
			StartTime: start,
			EndTime:   timePtr(start.Add(8 * time.Hour)),
			Breaks: []Break{
				{StartTime: start.Add(4 * time.Hour), EndTime: timePtr(start.Add(4*time.Hour + 45*time.Minute))},
			},
		}
		assert.Equal(t, 7*time.Hour+15*time.Minute, s.NetDuration(now))
	})

	t.Run("breaks exceeding gross floor at zero", func(t *testing.T) {
		s := Shift{
			StartTime: start,
			EndTime:   timePtr(start.Add(time.Hour)),
			Breaks: []Break{
				{StartTime: start, EndTime: timePtr(start.Add(2 * time.Hour))},
			},
		}
		assert.Equal(t, time.Duration(0), s.NetDuration(now))
	})

	t.Run("open break counts up to now", func(t *testing.T) {
		s := Shift{
			StartTime: start,
			Breaks: []Break{
				{StartTime: start.Add(2 * time.Hour)},
			},
		}
		at := start.Add(3 * time.Hour)
		assert.Equal(t, 2*time.Hour, s.NetDuration(at))
		assert.True(t, s.HasActiveBreak())
	})
}

func TestRequiredBreak(t *testing.T) {
	assert.Equal(t, time.Duration(0), RequiredBreak(6*time.Hour))
	assert.Equal(t, 30*time.Minute, RequiredBreak(6*time.Hour+time.Minute))
	assert.Equal(t, 30*time.Minute, RequiredBreak(9*time.Hour))
	assert.Equal(t, 45*time.Minute, RequiredBreak(9*time.Hour+time.Minute))
}

func TestShift_CheckCompliance(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	now := start.Add(24 * time.Hour)

	t.Run("open shift is never flagged", func(t *testing.T) {
		s := Shift{StartTime: start}
		assert.Nil(t, s.CheckCompliance(now))
	})

	t.Run("9.5h with 40m break is flagged", func(t *testing.T) {
		s := Shift{
			StartTime: start,
			EndTime:   timePtr(start.Add(9*time.Hour + 30*time.Minute)),
			Breaks: []Break{
				{StartTime: start.Add(4 * time.Hour), EndTime: timePtr(start.Add(4*time.Hour + 40*time.Minute))},
			},
		}
		warning := s.CheckCompliance(now)
		assert.NotNil(t, warning)
		assert.Equal(t, 45*time.Minute, warning.Required)
		assert.Equal(t, 40*time.Minute, warning.Taken)
		assert.Equal(t, 5*time.Minute, warning.Missing)
	})

	t.Run("6.5h with 35m break passes", func(t *testing.T) {
		s := Shift{
			StartTime: start,
			EndTime:   timePtr(start.Add(6*time.Hour + 30*time.Minute)),
			Breaks: []Break{
				{StartTime: start.Add(3 * time.Hour), EndTime: timePtr(start.Add(3*time.Hour + 35*time.Minute))},
			},
		}
		assert.Nil(t, s.CheckCompliance(now))
	})

	t.Run("short shift has no requirement", func(t *testing.T) {
		s := Shift{StartTime: start, EndTime: timePtr(start.Add(5 * time.Hour))}
		assert.Nil(t, s.CheckCompliance(now))
	})
}

func TestNewShiftResponse_RangeWarning(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	now := start.Add(24 * time.Hour)

	s := Shift{
		ID:        "s1",
		StartTime: start,
		EndTime:   timePtr(start.Add(8 * time.Hour)),
		Breaks: []Break{
			// Edited to start before the shift
			{ID: "b1", ShiftID: "s1", StartTime: start.Add(-time.Hour), EndTime: timePtr(start.Add(time.Hour))},
		},
	}

	resp := NewShiftResponse(s, now)
	assert.True(t, resp.RangeWarning)
	assert.False(t, resp.Active)
}
