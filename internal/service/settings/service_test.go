package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

type memSettingsRepo struct {
	settings.SettingsRepository
	cfg settings.Settings
}

func (m *memSettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	return m.cfg, nil
}

func (m *memSettingsRepo) SetWeeklyTarget(ctx context.Context, hours float64) error {
	m.cfg.WeeklyTargetHours = hours
	return nil
}

func (m *memSettingsRepo) SetHourlyRate(ctx context.Context, rate float64) error {
	m.cfg.HourlyRate = rate
	return nil
}

func float64Ptr(f float64) *float64 { return &f }

func TestSettingsService_Get(t *testing.T) {
	t.Run("fresh install reports the default target", func(t *testing.T) {
		svc := NewSettingsService(&memSettingsRepo{})

		resp, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.InDelta(t, settings.DefaultWeeklyTargetHours, resp.WeeklyTargetHours, 1e-9)
		assert.Zero(t, resp.HourlyRate)
		assert.False(t, resp.AppLockEnabled)
	})

	t.Run("stored values pass through", func(t *testing.T) {
		svc := NewSettingsService(&memSettingsRepo{cfg: settings.Settings{
			WeeklyTargetHours: 35,
			HourlyRate:        22.5,
		}})

		resp, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.InDelta(t, 35.0, resp.WeeklyTargetHours, 1e-9)
		assert.InDelta(t, 22.5, resp.HourlyRate, 1e-9)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates both fields", func(t *testing.T) {
		repo := &memSettingsRepo{}
		svc := NewSettingsService(repo)

		resp, err := svc.Update(ctx, settings.UpdateSettingsRequest{
			WeeklyTargetHours: float64Ptr(38),
			HourlyRate:        float64Ptr(25),
		})
		require.NoError(t, err)
		assert.InDelta(t, 38.0, resp.WeeklyTargetHours, 1e-9)
		assert.InDelta(t, 25.0, resp.HourlyRate, 1e-9)
	})

	t.Run("partial update leaves the other field alone", func(t *testing.T) {
		repo := &memSettingsRepo{cfg: settings.Settings{WeeklyTargetHours: 40, HourlyRate: 20}}
		svc := NewSettingsService(repo)

		resp, err := svc.Update(ctx, settings.UpdateSettingsRequest{HourlyRate: float64Ptr(21)})
		require.NoError(t, err)
		assert.InDelta(t, 40.0, resp.WeeklyTargetHours, 1e-9)
		assert.InDelta(t, 21.0, resp.HourlyRate, 1e-9)
	})

	t.Run("weekly target is clamped, not rejected", func(t *testing.T) {
		repo := &memSettingsRepo{}
		svc := NewSettingsService(repo)

		resp, err := svc.Update(ctx, settings.UpdateSettingsRequest{WeeklyTargetHours: float64Ptr(500)})
		require.NoError(t, err)
		assert.InDelta(t, 168.0, resp.WeeklyTargetHours, 1e-9)

		resp, err = svc.Update(ctx, settings.UpdateSettingsRequest{WeeklyTargetHours: float64Ptr(0)})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, resp.WeeklyTargetHours, 1e-9)
	})

	t.Run("negative hourly rate is invalid", func(t *testing.T) {
		repo := &memSettingsRepo{cfg: settings.Settings{HourlyRate: 20}}
		svc := NewSettingsService(repo)

		_, err := svc.Update(ctx, settings.UpdateSettingsRequest{HourlyRate: float64Ptr(-1)})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.InDelta(t, 20.0, repo.cfg.HourlyRate, 1e-9)
	})
}
