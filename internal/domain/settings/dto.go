package settings

import (
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

// UpdateSettingsRequest carries a partial settings update. Nil fields are
// left unchanged.
type UpdateSettingsRequest struct {
	WeeklyTargetHours *float64 `json:"weekly_target_hours"`
	HourlyRate        *float64 `json:"hourly_rate"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

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

type SettingsResponse struct {
	WeeklyTargetHours float64 `json:"weekly_target_hours"`
	HourlyRate        float64 `json:"hourly_rate"`
	AppLockEnabled    bool    `json:"app_lock_enabled"`
}

func NewSettingsResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		WeeklyTargetHours: s.EffectiveWeeklyTarget(),
		HourlyRate:        s.HourlyRate,
		AppLockEnabled:    s.AppLockEnabled,
	}
}
