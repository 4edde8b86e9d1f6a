package settings

import (
	"context"
	"fmt"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(repo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: repo}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings.NewSettingsResponse(cfg), nil
}

// Update implements settings.SettingsService. The weekly target is
// clamped to [1, 168] instead of rejecting out-of-range values.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	if req.WeeklyTargetHours != nil {
		clamped := settings.ClampWeeklyTarget(*req.WeeklyTargetHours)
		if err := s.SettingsRepository.SetWeeklyTarget(ctx, clamped); err != nil {
			return settings.SettingsResponse{}, fmt.Errorf("failed to update weekly target: %w", err)
		}
	}

	if req.HourlyRate != nil {
		if err := s.SettingsRepository.SetHourlyRate(ctx, *req.HourlyRate); err != nil {
			return settings.SettingsResponse{}, fmt.Errorf("failed to update hourly rate: %w", err)
		}
	}

	return s.Get(ctx)
}
