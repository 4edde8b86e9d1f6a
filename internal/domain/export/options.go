package export

import (
	"fmt"
	"log/slog"
	"time"
)

// Format selects the output document type.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Field is an exportable column. The order of the selection is the order
// of the output columns.
type Field string

const (
	FieldDate      Field = "date"
	FieldStartTime Field = "start_time"
	FieldEndTime   Field = "end_time"
	FieldDuration  Field = "duration"
	FieldShiftType Field = "shift_type"
	FieldBreakTime Field = "break_time"
)

// DefaultFields is the full column selection used when the caller does
// not narrow it.
func DefaultFields() []Field {
	return []Field{FieldDate, FieldStartTime, FieldEndTime, FieldDuration, FieldBreakTime, FieldShiftType}
}

// Label returns the human-readable column header for a field.
func (f Field) Label() string {
	switch f {
	case FieldDate:
		return "Date"
	case FieldStartTime:
		return "Start"
	case FieldEndTime:
		return "End"
	case FieldDuration:
		return "Duration"
	case FieldShiftType:
		return "Shift type"
	case FieldBreakTime:
		return "Breaks"
	default:
		return string(f)
	}
}

// DateRangePreset names a deterministic export interval.
type DateRangePreset string

const (
	PresetThisWeek  DateRangePreset = "this_week"
	PresetThisMonth DateRangePreset = "this_month"
	PresetLastMonth DateRangePreset = "last_month"
	PresetThisYear  DateRangePreset = "this_year"
	PresetCustom    DateRangePreset = "custom"
)

// Label returns the human-readable name used in report headers and
// export records.
func (p DateRangePreset) Label() string {
	switch p {
	case PresetThisWeek:
		return "This week"
	case PresetThisMonth:
		return "This month"
	case PresetLastMonth:
		return "Last month"
	case PresetThisYear:
		return "This year"
	case PresetCustom:
		return "Custom range"
	default:
		return string(p)
	}
}

// DateRange is a half-open [Start, End) interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains reports whether t falls inside the interval.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Options configures a single export run.
type Options struct {
	Format             Format
	DateRangePreset    DateRangePreset
	CustomDateRange    *DateRange
	Fields             []Field
	IncludeHeaders     bool
	EncryptionPassword string
}

// NewOptions returns options with the default field selection and headers
// enabled.
func NewOptions(format Format, preset DateRangePreset) Options {
	return Options{
		Format:          format,
		DateRangePreset: preset,
		Fields:          DefaultFields(),
		IncludeHeaders:  true,
	}
}

// DateRange resolves the preset to a concrete interval at the given
// instant. Weeks start on Monday. A custom preset without an explicit
// range is a caller bug; it falls back to a 7-day window and logs the
// inconsistency rather than failing the export.
func (o Options) DateRange(now time.Time) DateRange {
	switch o.DateRangePreset {
	case PresetThisWeek:
		return WeekInterval(now)
	case PresetThisMonth:
		return MonthInterval(now)
	case PresetLastMonth:
		// Step back from the month's first day; subtracting a month
		// from the 29th-31st would normalize into the current month.
		return MonthInterval(MonthInterval(now).Start.AddDate(0, 0, -1))
	case PresetThisYear:
		return YearInterval(now)
	case PresetCustom:
		if o.CustomDateRange != nil {
			return *o.CustomDateRange
		}
		slog.Error("export options: custom preset without a custom range, using 7-day fallback")
		return DateRange{Start: now, End: now.AddDate(0, 0, 7)}
	default:
		slog.Error("export options: unknown date range preset, using 7-day fallback", "preset", string(o.DateRangePreset))
		return DateRange{Start: now, End: now.AddDate(0, 0, 7)}
	}
}

// RangeLabel renders the resolved interval for report subtitles and
// export records, e.g. "This week: 23.02.2026 - 02.03.2026".
func (o Options) RangeLabel(now time.Time) string {
	r := o.DateRange(now)
	return fmt.Sprintf("%s: %s - %s",
		o.DateRangePreset.Label(),
		r.Start.Format("02.01.2006"),
		r.End.Format("02.01.2006"),
	)
}

// WeekInterval returns the Monday-start week containing t, as
// [Monday 00:00, next Monday 00:00) in t's location.
func WeekInterval(t time.Time) DateRange {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := day.AddDate(0, 0, -offset+1)
	return DateRange{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthInterval returns the calendar month containing t.
func MonthInterval(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return DateRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// YearInterval returns the calendar year containing t.
func YearInterval(t time.Time) DateRange {
	start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	return DateRange{Start: start, End: start.AddDate(1, 0, 0)}
}
