package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/export"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
)

const appName = "ShiftTracker"

// generatePDF renders the paginated report: title block, range subtitle,
// column-headed table with alternating row shading, and a trailing
// summary. Maroto handles page breaks and repeats the registered header
// on every page.
func generatePDF(shifts []shift.Shift, opts export.Options, cfg settings.Settings, now time.Time) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(18, 15, 18)

	rangeLabel := opts.RangeLabel(now)

	m.RegisterHeader(func() {
		m.Row(12, func() {
			m.Col(12, func() {
				m.Text(appName+" - Shift Report", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Left,
					Size:  16,
				})
			})
		})
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(rangeLabel, props.Text{
					Style: consts.Normal,
					Align: consts.Left,
					Size:  10,
				})
			})
			m.Col(4, func() {
				m.Text("Generated: "+now.Format("02.01.2006 15:04"), props.Text{
					Style: consts.Normal,
					Align: consts.Right,
					Size:  9,
				})
			})
		})
		m.Line(4)
	})

	m.RegisterFooter(func() {
		m.Row(8, func() {
			m.Col(6, func() {
				m.Text(appName, props.Text{
					Size:  8,
					Align: consts.Left,
					Color: color.Color{Red: 100, Green: 100, Blue: 100},
				})
			})
			m.Col(6, func() {
				m.Text("Page "+strconv.Itoa(m.GetCurrentPage()), props.Text{
					Size:  8,
					Align: consts.Right,
					Color: color.Color{Red: 100, Green: 100, Blue: 100},
				})
			})
		})
	})

	headers := make([]string, 0, len(opts.Fields))
	for _, f := range opts.Fields {
		headers = append(headers, f.Label())
	}

	rows := make([][]string, 0, len(shifts))
	for i := range shifts {
		row := make([]string, 0, len(opts.Fields))
		for _, f := range opts.Fields {
			row = append(row, renderPDFField(&shifts[i], f, now))
		}
		rows = append(rows, row)
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: gridSizes(len(opts.Fields)),
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: gridSizes(len(opts.Fields)),
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	writeSummary(m, shifts, opts, cfg, now)

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// gridSizes splits maroto's 12-column grid across the selected fields,
// giving the remainder to the first column.
func gridSizes(fieldCount int) []uint {
	if fieldCount == 0 {
		return nil
	}
	base := uint(12 / fieldCount)
	rest := uint(12 % fieldCount)
	sizes := make([]uint, fieldCount)
	for i := range sizes {
		sizes[i] = base
	}
	sizes[0] += rest
	return sizes
}

func renderPDFField(s *shift.Shift, f export.Field, now time.Time) string {
	switch f {
	case export.FieldDate:
		return s.StartTime.Format("02.01.2006")
	case export.FieldStartTime:
		return s.StartTime.Format("15:04")
	case export.FieldEndTime:
		if s.EndTime == nil {
			return "-"
		}
		return s.EndTime.Format("15:04")
	case export.FieldDuration:
		return fmt.Sprintf("%.1f h", s.NetDuration(now).Hours())
	case export.FieldShiftType:
		if s.ShiftTypeName == nil {
			return "-"
		}
		return *s.ShiftTypeName
	case export.FieldBreakTime:
		minutes := s.TotalBreakDuration(now).Minutes()
		if minutes <= 0 {
			return "-"
		}
		return fmt.Sprintf("%.0f min", minutes)
	default:
		return "-"
	}
}

// writeSummary appends the trailing totals block. Overtime is measured
// against the weekly target prorated by the number of weeks in the range.
func writeSummary(m pdf.Maroto, shifts []shift.Shift, opts export.Options, cfg settings.Settings, now time.Time) {
	var (
		completed    int
		netHours     float64
		breakMinutes float64
	)
	for i := range shifts {
		sh := &shifts[i]
		if sh.EndTime != nil {
			completed++
		}
		netHours += sh.NetDuration(now).Hours()
		breakMinutes += sh.TotalBreakDuration(now).Minutes()
	}

	weeks := opts.DateRange(now).Duration().Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}
	targetHours := cfg.EffectiveWeeklyTarget() * weeks
	overtime := netHours - targetHours

	m.Row(6, func() {})
	m.Line(2)
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text("Summary", props.Text{
				Style: consts.Bold,
				Size:  12,
			})
		})
	})

	summaryRow(m, "Shifts", fmt.Sprintf("%d (%d completed)", len(shifts), completed))
	summaryRow(m, "Total working time", fmt.Sprintf("%.2f h", netHours))
	summaryRow(m, "Total break time", fmt.Sprintf("%.0f min", breakMinutes))
	summaryRow(m, "Overtime vs target", fmt.Sprintf("%+.2f h (target %.0f h)", overtime, targetHours))
}

func summaryRow(m pdf.Maroto, label, value string) {
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text(label, props.Text{Size: 10})
		})
		m.Col(6, func() {
			m.Text(value, props.Text{Size: 10, Align: consts.Right, Style: consts.Bold})
		})
	})
}
