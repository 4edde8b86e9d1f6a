package auth

import "context"

// AuthService gates the API behind a PIN. Biometric unlock happens on the
// client; the backend only sees the resulting unlock call.
type AuthService interface {
	// SetupPIN hashes and stores a new PIN and enables the app lock.
	// Weak PINs are rejected.
	SetupPIN(ctx context.Context, req SetupPINRequest) error

	// Unlock verifies the PIN and issues a session token. After the
	// attempt limit is reached the PIN is hard-locked.
	Unlock(ctx context.Context, req UnlockRequest) (UnlockResponse, error)

	// Lock ends the current unlock session by revoking its token.
	// Subsequent requests behind the app lock must unlock again.
	Lock(ctx context.Context, token string) error

	// DisableLock clears the PIN and disables the app lock.
	DisableLock(ctx context.Context) error

	Status(ctx context.Context) (AuthStatusResponse, error)
}
