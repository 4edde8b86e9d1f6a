package shift

import (
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type ClockInRequest struct {
	ShiftTypeID *string `json:"shift_type_id"`
}

type UpdateShiftRequest struct {
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time"`
	ShiftTypeID *string `json:"shift_type_id"`

	// Parsed values, filled by Validate
	ParsedStart time.Time  `json:"-"`
	ParsedEnd   *time.Time `json:"-"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if t, ok := validator.IsValidDateTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an ISO8601 timestamp",
		})
	} else {
		r.ParsedStart = t
	}

	if r.EndTime != nil && *r.EndTime != "" {
		if t, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be an ISO8601 timestamp",
			})
		} else {
			r.ParsedEnd = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBreakRequest struct {
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`

	ParsedStart time.Time  `json:"-"`
	ParsedEnd   *time.Time `json:"-"`
}

func (r *UpdateBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if t, ok := validator.IsValidDateTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an ISO8601 timestamp",
		})
	} else {
		r.ParsedStart = t
	}

	if r.EndTime != nil && *r.EndTime != "" {
		if t, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be an ISO8601 timestamp",
			})
		} else {
			r.ParsedEnd = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShiftResponse is the API representation of a shift with its derived
// values computed at response time.
type ShiftResponse struct {
	ID                string             `json:"id"`
	StartTime         time.Time          `json:"start_time"`
	EndTime           *time.Time         `json:"end_time,omitempty"`
	ShiftTypeID       *string            `json:"shift_type_id,omitempty"`
	ShiftTypeName     *string            `json:"shift_type_name,omitempty"`
	Active            bool               `json:"active"`
	DurationMinutes   int                `json:"duration_minutes"`
	BreakMinutes      int                `json:"break_minutes"`
	NetMinutes        int                `json:"net_minutes"`
	HasActiveBreak    bool               `json:"has_active_break"`
	Breaks            []BreakResponse    `json:"breaks"`
	ComplianceWarning *ComplianceWarning `json:"compliance_warning,omitempty"`
	// Breaks edited outside their shift's range are flagged, never rejected.
	RangeWarning bool `json:"range_warning,omitempty"`
}

type BreakResponse struct {
	ID              string     `json:"id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	Active          bool       `json:"active"`
	DurationMinutes int        `json:"duration_minutes"`
}

// NewShiftResponse builds the response representation at the given instant.
func NewShiftResponse(s Shift, now time.Time) ShiftResponse {
	breaks := make([]BreakResponse, 0, len(s.Breaks))
	rangeWarning := false
	for i := range s.Breaks {
		b := &s.Breaks[i]
		breaks = append(breaks, BreakResponse{
			ID:              b.ID,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			Active:          b.IsActive(),
			DurationMinutes: int(b.Duration(now).Minutes()),
		})
		if !withinShift(s, b) {
			rangeWarning = true
		}
	}

	return ShiftResponse{
		ID:                s.ID,
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		ShiftTypeID:       s.ShiftTypeID,
		ShiftTypeName:     s.ShiftTypeName,
		Active:            s.IsActive(),
		DurationMinutes:   int(s.Duration(now).Minutes()),
		BreakMinutes:      int(s.TotalBreakDuration(now).Minutes()),
		NetMinutes:        int(s.NetDuration(now).Minutes()),
		HasActiveBreak:    s.HasActiveBreak(),
		Breaks:            breaks,
		ComplianceWarning: s.CheckCompliance(now),
		RangeWarning:      rangeWarning,
	}
}

// withinShift checks the SHOULD-invariant that a break falls inside its
// shift's range. Open ends are not checked.
func withinShift(s Shift, b *Break) bool {
	if b.StartTime.Before(s.StartTime) {
		return false
	}
	if s.EndTime != nil && b.EndTime != nil && b.EndTime.After(*s.EndTime) {
		return false
	}
	return true
}
