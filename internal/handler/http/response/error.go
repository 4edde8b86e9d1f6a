package response

import (
	"errors"
	"net/http"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/auth"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/export"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/template"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Shift domain errors
	case errors.Is(err, shift.ErrShiftAlreadyActive):
		Conflict(w, "A shift is already running")
	case errors.Is(err, shift.ErrNoActiveShift):
		Conflict(w, "No shift is currently running")
	case errors.Is(err, shift.ErrShiftAlreadyEnded):
		Conflict(w, "Shift has already ended")
	case errors.Is(err, shift.ErrBreakAlreadyActive):
		Conflict(w, "A break is already running")
	case errors.Is(err, shift.ErrNoActiveBreak):
		Conflict(w, "No break is currently running")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrBreakNotFound):
		NotFound(w, "Break not found")

	// Shift type domain errors
	case errors.Is(err, shifttype.ErrShiftTypeNotFound):
		NotFound(w, "Shift type not found")
	case errors.Is(err, shifttype.ErrNameRequired):
		BadRequest(w, "Shift type name must not be empty", nil)

	// Template domain errors
	case errors.Is(err, template.ErrTemplateNotFound):
		NotFound(w, "Shift template not found")

	// Export domain errors
	case errors.Is(err, export.ErrNoShifts):
		BadRequest(w, "No shifts in the selected date range", nil)
	case errors.Is(err, export.ErrNoFieldsSelected):
		BadRequest(w, "At least one export field must be selected", nil)
	case errors.Is(err, export.ErrInvalidDateRange):
		BadRequest(w, "The selected date range is invalid", nil)
	case errors.Is(err, export.ErrExportNotFound):
		NotFound(w, "Export file not found")
	case errors.Is(err, export.ErrDecryptionFailed):
		BadRequest(w, "Wrong password or damaged export file", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Wrong PIN")
	case errors.Is(err, auth.ErrPINLocked):
		Locked(w, "Too many failed attempts, PIN entry is locked")
	case errors.Is(err, auth.ErrNoPINSet):
		BadRequest(w, "No PIN has been set up", nil)
	case errors.Is(err, auth.ErrWeakPIN):
		BadRequest(w, "PIN is too easy to guess", nil)
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Session token expired")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
