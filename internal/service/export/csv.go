package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/export"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
)

// Delimited-text output: semicolon separator for European decimal-comma
// locales, CRLF line endings, UTF-8 BOM for spreadsheet compatibility.
const (
	csvSeparator  = ";"
	csvLineEnding = "\r\n"
	utf8BOM       = "\uFEFF"
)

// generateCSV renders one row per shift with columns in the exact order
// of the selected fields.
func generateCSV(shifts []shift.Shift, opts export.Options, now time.Time) []byte {
	var sb strings.Builder
	sb.WriteString(utf8BOM)

	if opts.IncludeHeaders {
		labels := make([]string, 0, len(opts.Fields))
		for _, f := range opts.Fields {
			labels = append(labels, escapeCSVField(f.Label()))
		}
		sb.WriteString(strings.Join(labels, csvSeparator))
		sb.WriteString(csvLineEnding)
	}

	for i := range shifts {
		row := make([]string, 0, len(opts.Fields))
		for _, f := range opts.Fields {
			row = append(row, escapeCSVField(renderCSVField(&shifts[i], f, now)))
		}
		sb.WriteString(strings.Join(row, csvSeparator))
		sb.WriteString(csvLineEnding)
	}

	return []byte(sb.String())
}

func renderCSVField(s *shift.Shift, f export.Field, now time.Time) string {
	switch f {
	case export.FieldDate:
		return s.StartTime.Format("02.01.2006")
	case export.FieldStartTime:
		return s.StartTime.Format("15:04")
	case export.FieldEndTime:
		if s.EndTime == nil {
			return ""
		}
		return s.EndTime.Format("15:04")
	case export.FieldDuration:
		return fmt.Sprintf("%.2f", s.NetDuration(now).Hours())
	case export.FieldShiftType:
		if s.ShiftTypeName == nil {
			return ""
		}
		return *s.ShiftTypeName
	case export.FieldBreakTime:
		minutes := s.TotalBreakDuration(now).Minutes()
		if minutes <= 0 {
			return ""
		}
		return fmt.Sprintf("%.0f", minutes)
	default:
		return ""
	}
}

// escapeCSVField wraps a field in double quotes when it contains the
// separator, a quote, or a newline; embedded quotes are doubled.
func escapeCSVField(field string) string {
	if strings.Contains(field, csvSeparator) || strings.Contains(field, `"`) || strings.Contains(field, "\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}
