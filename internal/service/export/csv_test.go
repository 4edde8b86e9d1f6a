package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/export"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
)

func timePtr(t time.Time) *time.Time { return &t }
func strPtr(s string) *string        { return &s }

func TestEscapeCSVField(t *testing.T) {
	assert.Equal(t, "plain", escapeCSVField("plain"))
	assert.Equal(t, `"semi;colon"`, escapeCSVField("semi;colon"))
	assert.Equal(t, `"has ""quotes"""`, escapeCSVField(`has "quotes"`))
	assert.Equal(t, "\"line\nbreak\"", escapeCSVField("line\nbreak"))
	assert.Equal(t, "", escapeCSVField(""))
}

func TestGenerateCSV(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	now := start.Add(24 * time.Hour)

	shifts := []shift.Shift{
		{
			ID:            "s1",
			StartTime:     start,
			EndTime:       timePtr(start.Add(8 * time.Hour)),
			ShiftTypeName: strPtr("Early shift"),
			Breaks: []shift.Break{
				{ShiftID: "s1", StartTime: start.Add(4 * time.Hour), EndTime: timePtr(start.Add(4*time.Hour + 45*time.Minute))},
			},
		},
	}

	opts := export.NewOptions(export.FormatCSV, export.PresetThisWeek)
	opts.Fields = []export.Field{export.FieldDate, export.FieldStartTime, export.FieldEndTime, export.FieldDuration, export.FieldBreakTime}

	data := string(generateCSV(shifts, opts, now))

	t.Run("starts with UTF-8 BOM", func(t *testing.T) {
		assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, []byte(data[:3]))
	})

	t.Run("header row plus one row per shift, CRLF terminated", func(t *testing.T) {
		lines := strings.Split(strings.TrimSuffix(data, "\r\n"), "\r\n")
		assert.Len(t, lines, 2)
		assert.Equal(t, "\uFEFFDate;Start;End;Duration;Breaks", lines[0])
		assert.Equal(t, "02.03.2026;08:00;16:00;7.25;45", lines[1])
	})
}

func TestGenerateCSV_OpenShiftAndEmptyFields(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	now := start.Add(2 * time.Hour)

	shifts := []shift.Shift{
		{ID: "s1", StartTime: start},
	}

	opts := export.NewOptions(export.FormatCSV, export.PresetThisWeek)
	opts.IncludeHeaders = false

	data := string(generateCSV(shifts, opts, now))
	lines := strings.Split(strings.TrimSuffix(data, "\r\n"), "\r\n")
	assert.Len(t, lines, 1)

	// date;start;end;duration;break;type with open end, no breaks, no type
	assert.Equal(t, "\uFEFF02.03.2026;08:00;;2.00;;", lines[0])
}

func TestGenerateCSV_EscapesTypeName(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	now := start.Add(24 * time.Hour)

	shifts := []shift.Shift{
		{
			ID:            "s1",
			StartTime:     start,
			EndTime:       timePtr(start.Add(time.Hour)),
			ShiftTypeName: strPtr(`Night; "special"`),
		},
	}

	opts := export.NewOptions(export.FormatCSV, export.PresetThisWeek)
	opts.IncludeHeaders = false
	opts.Fields = []export.Field{export.FieldShiftType}

	data := string(generateCSV(shifts, opts, now))
	assert.Equal(t, "\uFEFF\"Night; \"\"special\"\"\"\r\n", data)
}
