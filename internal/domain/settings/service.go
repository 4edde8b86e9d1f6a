package settings

import "context"

// SettingsService reads and updates the user settings. Weekly target
// writes are clamped, never rejected.
type SettingsService interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
