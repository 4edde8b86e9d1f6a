package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidPIN = errors.New("wrong PIN")
	ErrPINLocked  = errors.New("too many failed attempts, PIN entry is locked")
	ErrNoPINSet   = errors.New("no PIN has been set up")
	ErrWeakPIN    = errors.New("PIN is too easy to guess")

	ErrTokenExpired = errors.New("session token expired")
)
