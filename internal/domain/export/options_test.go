package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekInterval(t *testing.T) {
	t.Run("midweek resolves to monday start", func(t *testing.T) {
		// Wednesday 2026-03-04
		r := WeekInterval(time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), r.End)
	})

	t.Run("sunday belongs to the week started the previous monday", func(t *testing.T) {
		// Sunday 2026-03-08 23:59
		r := WeekInterval(time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), r.Start)
	})

	t.Run("monday midnight starts a new week", func(t *testing.T) {
		r := WeekInterval(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), r.Start)
	})
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, r.Contains(r.Start), "start is inclusive")
	assert.False(t, r.Contains(r.End), "end is exclusive")
	assert.True(t, r.Contains(time.Date(2026, 3, 8, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(r.Start.Add(-time.Second)))
}

func TestOptions_DateRange(t *testing.T) {
	// Wednesday 2026-03-04
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	t.Run("this week", func(t *testing.T) {
		opts := NewOptions(FormatCSV, PresetThisWeek)
		r := opts.DateRange(now)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), r.Start)
	})

	t.Run("this month", func(t *testing.T) {
		opts := NewOptions(FormatCSV, PresetThisMonth)
		r := opts.DateRange(now)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), r.End)
	})

	t.Run("last month crosses the year boundary", func(t *testing.T) {
		jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		opts := NewOptions(FormatCSV, PresetLastMonth)
		r := opts.DateRange(jan)
		assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), r.End)
	})

	t.Run("last month from a day past the previous month's end", func(t *testing.T) {
		// Subtracting a calendar month from Mar 29-31 must not
		// normalize back into March; February 2026 has 28 days.
		opts := NewOptions(FormatCSV, PresetLastMonth)
		for _, day := range []int{29, 30, 31} {
			r := opts.DateRange(time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC))
			assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), r.Start, "day %d", day)
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.End, "day %d", day)
		}
	})

	t.Run("this year", func(t *testing.T) {
		opts := NewOptions(FormatPDF, PresetThisYear)
		r := opts.DateRange(now)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), r.End)
	})

	t.Run("custom range is used as-is", func(t *testing.T) {
		opts := NewOptions(FormatCSV, PresetCustom)
		custom := DateRange{
			Start: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		}
		opts.CustomDateRange = &custom
		assert.Equal(t, custom, opts.DateRange(now))
	})

	t.Run("custom preset without range falls back to seven days", func(t *testing.T) {
		opts := NewOptions(FormatCSV, PresetCustom)
		r := opts.DateRange(now)
		assert.Equal(t, now, r.Start)
		assert.Equal(t, now.AddDate(0, 0, 7), r.End)
	})
}

func TestOptions_RangeLabel(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	opts := NewOptions(FormatCSV, PresetThisWeek)
	assert.Equal(t, "This week: 02.03.2026 - 09.03.2026", opts.RangeLabel(now))
}

func TestDefaultFields(t *testing.T) {
	fields := DefaultFields()
	assert.Len(t, fields, 6)
	assert.Equal(t, FieldDate, fields[0])
}
