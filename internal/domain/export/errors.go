package export

import "errors"

// Export domain errors
var (
	// Validation errors, reported before any file I/O
	ErrNoShifts         = errors.New("no shifts in the selected date range")
	ErrNoFieldsSelected = errors.New("at least one export field must be selected")
	ErrInvalidDateRange = errors.New("the selected date range is invalid")

	// Generation errors
	ErrGenerationFailed = errors.New("export document could not be generated")

	// Lookup errors
	ErrExportNotFound = errors.New("export file not found")

	// Encryption errors
	ErrEncryptionFailed = errors.New("export encryption failed")
	ErrDecryptionFailed = errors.New("export decryption failed")
)
