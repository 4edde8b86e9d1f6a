package template

import (
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

type SaveTemplateRequest struct {
	Name                 string   `json:"name"`
	ShiftTypeID          *string  `json:"shift_type_id"`
	DefaultStartHour     int      `json:"default_start_hour"`
	DefaultStartMinute   int      `json:"default_start_minute"`
	DefaultDurationHours *float64 `json:"default_duration_hours"`
	IsActive             *bool    `json:"is_active"`
}

func (r *SaveTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.DefaultStartHour < 0 || r.DefaultStartHour > 23 {
		errs = append(errs, validator.ValidationError{
			Field:   "default_start_hour",
			Message: "default_start_hour must be between 0 and 23",
		})
	}

	if r.DefaultStartMinute < 0 || r.DefaultStartMinute > 59 {
		errs = append(errs, validator.ValidationError{
			Field:   "default_start_minute",
			Message: "default_start_minute must be between 0 and 59",
		})
	}

	if r.DefaultDurationHours != nil && (*r.DefaultDurationHours <= 0 || *r.DefaultDurationHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_duration_hours",
			Message: "default_duration_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// InstantiateTemplateRequest creates a shift from a template's defaults.
// Date defaults to today when absent.
type InstantiateTemplateRequest struct {
	Date *string `json:"date"`
}

func (r *InstantiateTemplateRequest) Validate() error {
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			return validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be formatted as YYYY-MM-DD",
			}}
		}
	}
	return nil
}

type TemplateResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	ShiftTypeID          *string `json:"shift_type_id,omitempty"`
	DefaultStart         string  `json:"default_start"`
	DefaultDurationHours float64 `json:"default_duration_hours"`
	IsActive             bool    `json:"is_active"`
}

func NewTemplateResponse(t ShiftTemplate) TemplateResponse {
	return TemplateResponse{
		ID:                   t.ID,
		Name:                 t.Name,
		ShiftTypeID:          t.ShiftTypeID,
		DefaultStart:         t.FormattedStartTime(),
		DefaultDurationHours: t.DefaultDurationHours,
		IsActive:             t.IsActive,
	}
}
