package shifttype

import "errors"

var (
	ErrShiftTypeNotFound = errors.New("shift type not found")
	ErrNameRequired      = errors.New("shift type name must not be empty")
)
