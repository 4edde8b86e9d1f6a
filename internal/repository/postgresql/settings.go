package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
)

// settingsRepository stores the single settings row. Writes upsert so a
// fresh database works without seeding.
type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository. A missing row yields the
// zero value; defaults are applied by the domain type.
func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT weekly_target_hours, hourly_rate, app_lock_enabled, pin_hash
		FROM settings
		WHERE id = 1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query).Scan(&s.WeeklyTargetHours, &s.HourlyRate, &s.AppLockEnabled, &s.PINHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// SetWeeklyTarget implements settings.SettingsRepository.
func (r *settingsRepository) SetWeeklyTarget(ctx context.Context, hours float64) error {
	return r.upsert(ctx, "weekly_target_hours", hours)
}

// SetHourlyRate implements settings.SettingsRepository.
func (r *settingsRepository) SetHourlyRate(ctx context.Context, rate float64) error {
	return r.upsert(ctx, "hourly_rate", rate)
}

// SetAppLockEnabled implements settings.SettingsRepository.
func (r *settingsRepository) SetAppLockEnabled(ctx context.Context, enabled bool) error {
	return r.upsert(ctx, "app_lock_enabled", enabled)
}

// SetPINHash implements settings.SettingsRepository.
func (r *settingsRepository) SetPINHash(ctx context.Context, hash *string) error {
	return r.upsert(ctx, "pin_hash", hash)
}

func (r *settingsRepository) upsert(ctx context.Context, column string, value interface{}) error {
	q := GetQuerier(ctx, r.db)

	// column names come from the callers above, never from input
	query := fmt.Sprintf(`
		INSERT INTO settings (id, %s)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET %s = EXCLUDED.%s, updated_at = NOW()
	`, column, column, column)

	if _, err := q.Exec(ctx, query, value); err != nil {
		return fmt.Errorf("failed to update settings %s: %w", column, err)
	}

	return nil
}
