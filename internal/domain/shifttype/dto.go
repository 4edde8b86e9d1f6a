package shifttype

import (
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

type SaveShiftTypeRequest struct {
	Name       string   `json:"name"`
	ColorHex   string   `json:"color_hex"`
	HourlyRate *float64 `json:"hourly_rate"`
}

func (r *SaveShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftTypeResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ColorHex   string   `json:"color_hex"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

func NewShiftTypeResponse(t ShiftType) ShiftTypeResponse {
	return ShiftTypeResponse{
		ID:         t.ID,
		Name:       t.Name,
		ColorHex:   t.DisplayColor(),
		HourlyRate: t.HourlyRate,
	}
}
