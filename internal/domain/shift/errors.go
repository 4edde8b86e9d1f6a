package shift

import "errors"

// Shift domain errors
var (
	// Clock in/out errors
	ErrShiftAlreadyActive = errors.New("a shift is already running")
	ErrNoActiveShift      = errors.New("no active shift found")
	ErrShiftAlreadyEnded  = errors.New("shift has already ended")

	// Break errors
	ErrBreakAlreadyActive = errors.New("a break is already running")
	ErrNoActiveBreak      = errors.New("no active break found")
	ErrBreakNotFound      = errors.New("break not found")

	// General errors
	ErrShiftNotFound = errors.New("shift not found")
)
