package settings

import "context"

// SettingsRepository is a key-value style store for user settings and the
// PIN credential hash.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)

	SetWeeklyTarget(ctx context.Context, hours float64) error
	SetHourlyRate(ctx context.Context, rate float64) error
	SetAppLockEnabled(ctx context.Context, enabled bool) error

	// SetPINHash stores the credential hash; nil clears it.
	SetPINHash(ctx context.Context, hash *string) error
}
