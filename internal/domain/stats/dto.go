package stats

import (
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
)

// DisplayBucket names the fixed history groupings, in display order.
type DisplayBucket string

const (
	BucketToday     DisplayBucket = "Today"
	BucketYesterday DisplayBucket = "Yesterday"
	BucketThisWeek  DisplayBucket = "This week"
	BucketOlder     DisplayBucket = "Older"
)

// ShiftGroup is one display bucket with its shifts, most recent first.
type ShiftGroup struct {
	Bucket DisplayBucket         `json:"bucket"`
	Shifts []shift.ShiftResponse `json:"shifts"`
}

// WeekStats summarizes the Monday-start week containing the reference
// instant.
type WeekStats struct {
	WeekStart   time.Time `json:"week_start"`
	WeekEnd     time.Time `json:"week_end"`
	TotalHours  float64   `json:"total_hours"`
	TargetHours float64   `json:"target_hours"`
	Overtime    float64   `json:"overtime"`
	// Progress is TotalHours/TargetHours capped at 1.0, zero when the
	// target is not positive.
	Progress float64 `json:"progress"`
}

// WeekPoint is one data point of the current-month chart: net hours and
// break minutes per Monday-start week.
type WeekPoint struct {
	WeekStart    time.Time `json:"week_start"`
	NetHours     float64   `json:"net_hours"`
	BreakMinutes float64   `json:"break_minutes"`
}

// MonthPoint is one data point of the current-year chart.
type MonthPoint struct {
	Month      time.Time `json:"month"`
	NetHours   float64   `json:"net_hours"`
	ShiftCount int       `json:"shift_count"`
}

// Earnings sums a period's net hours valued at the applicable rates.
type Earnings struct {
	Hours  float64 `json:"hours"`
	Amount float64 `json:"amount"`
}

// EarningsSummary covers the three standard periods.
type EarningsSummary struct {
	ThisWeek  Earnings `json:"this_week"`
	ThisMonth Earnings `json:"this_month"`
	ThisYear  Earnings `json:"this_year"`
}

// TypeEarnings is the current-month breakdown for one shift type.
// Untyped shifts appear under the NoTypeLabel.
type TypeEarnings struct {
	TypeName   string  `json:"type_name"`
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	Amount     float64 `json:"amount"`
}

// NoTypeLabel groups shifts without a type in earnings breakdowns.
const NoTypeLabel = "No selection"
