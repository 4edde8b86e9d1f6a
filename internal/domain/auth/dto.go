package auth

import (
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

type SetupPINRequest struct {
	PIN string `json:"pin"`
}

func (r *SetupPINRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.PIN) < 4 || len(r.PIN) > 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 to 8 digits",
		})
	} else if !validator.IsNumeric(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must contain digits only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UnlockRequest struct {
	PIN string `json:"pin"`
}

type UnlockResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type AuthStatusResponse struct {
	AppLockEnabled bool `json:"app_lock_enabled"`
	PINSet         bool `json:"pin_set"`
	Locked         bool `json:"locked"`
	AttemptsLeft   int  `json:"attempts_left"`
}
