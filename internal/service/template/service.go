package template

import (
	"context"
	"fmt"
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/template"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

const defaultDurationHours = 8.0

type TemplateServiceImpl struct {
	template.TemplateRepository
	shiftTypeRepo shifttype.ShiftTypeRepository
	shiftRepo     shift.ShiftRepository

	// now is injectable for tests; defaults to time.Now
	now func() time.Time
}

func NewTemplateService(
	templateRepo template.TemplateRepository,
	shiftTypeRepo shifttype.ShiftTypeRepository,
	shiftRepo shift.ShiftRepository,
) *TemplateServiceImpl {
	return &TemplateServiceImpl{
		TemplateRepository: templateRepo,
		shiftTypeRepo:      shiftTypeRepo,
		shiftRepo:          shiftRepo,
		now:                time.Now,
	}
}

var _ template.TemplateService = (*TemplateServiceImpl)(nil)

// Create implements template.TemplateService.
func (s *TemplateServiceImpl) Create(ctx context.Context, req template.SaveTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}

	if req.ShiftTypeID != nil {
		if _, err := s.shiftTypeRepo.GetByID(ctx, *req.ShiftTypeID); err != nil {
			return template.TemplateResponse{}, err
		}
	}

	duration := defaultDurationHours
	if req.DefaultDurationHours != nil {
		duration = *req.DefaultDurationHours
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := s.TemplateRepository.Create(ctx, template.ShiftTemplate{
		Name:                 req.Name,
		ShiftTypeID:          req.ShiftTypeID,
		DefaultStartHour:     req.DefaultStartHour,
		DefaultStartMinute:   req.DefaultStartMinute,
		DefaultDurationHours: duration,
		IsActive:             active,
	})
	if err != nil {
		return template.TemplateResponse{}, fmt.Errorf("failed to create template: %w", err)
	}

	return template.NewTemplateResponse(created), nil
}

// Get implements template.TemplateService.
func (s *TemplateServiceImpl) Get(ctx context.Context, id string) (template.TemplateResponse, error) {
	t, err := s.TemplateRepository.GetByID(ctx, id)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return template.NewTemplateResponse(t), nil
}

// List implements template.TemplateService.
func (s *TemplateServiceImpl) List(ctx context.Context, activeOnly bool) ([]template.TemplateResponse, error) {
	templates, err := s.TemplateRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	responses := make([]template.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, template.NewTemplateResponse(t))
	}
	return responses, nil
}

// Update implements template.TemplateService.
func (s *TemplateServiceImpl) Update(ctx context.Context, id string, req template.SaveTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}

	t, err := s.TemplateRepository.GetByID(ctx, id)
	if err != nil {
		return template.TemplateResponse{}, err
	}

	if req.ShiftTypeID != nil {
		if _, err := s.shiftTypeRepo.GetByID(ctx, *req.ShiftTypeID); err != nil {
			return template.TemplateResponse{}, err
		}
	}

	t.Name = req.Name
	t.ShiftTypeID = req.ShiftTypeID
	t.DefaultStartHour = req.DefaultStartHour
	t.DefaultStartMinute = req.DefaultStartMinute
	if req.DefaultDurationHours != nil {
		t.DefaultDurationHours = *req.DefaultDurationHours
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.TemplateRepository.Update(ctx, t); err != nil {
		return template.TemplateResponse{}, fmt.Errorf("failed to update template: %w", err)
	}

	return template.NewTemplateResponse(t), nil
}

// Delete implements template.TemplateService.
func (s *TemplateServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.TemplateRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.TemplateRepository.Delete(ctx, id)
}

// Instantiate implements template.TemplateService. The shift is recorded
// as already completed; live tracking goes through clock-in instead.
func (s *TemplateServiceImpl) Instantiate(ctx context.Context, id string, req template.InstantiateTemplateRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	t, err := s.TemplateRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	now := s.now()
	day := now
	if req.Date != nil {
		day, _ = validator.IsValidDate(*req.Date)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), t.DefaultStartHour, t.DefaultStartMinute, 0, 0, time.UTC)
	end := start.Add(time.Duration(t.DefaultDurationHours * float64(time.Hour)))

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		StartTime:   start,
		EndTime:     &end,
		ShiftTypeID: t.ShiftTypeID,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift from template: %w", err)
	}

	return shift.NewShiftResponse(created, now), nil
}
