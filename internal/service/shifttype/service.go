package shifttype

import (
	"context"
	"fmt"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
	"github.com/maboeh/shifttracker-backend-go/internal/repository/postgresql"
)

type ShiftTypeServiceImpl struct {
	db *database.DB
	shifttype.ShiftTypeRepository
	shiftRepo shift.ShiftRepository
}

func NewShiftTypeService(
	db *database.DB,
	shiftTypeRepo shifttype.ShiftTypeRepository,
	shiftRepo shift.ShiftRepository,
) shifttype.ShiftTypeService {
	return &ShiftTypeServiceImpl{
		db:                  db,
		ShiftTypeRepository: shiftTypeRepo,
		shiftRepo:           shiftRepo,
	}
}

// Create implements shifttype.ShiftTypeService.
func (s *ShiftTypeServiceImpl) Create(ctx context.Context, req shifttype.SaveShiftTypeRequest) (shifttype.ShiftTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return shifttype.ShiftTypeResponse{}, err
	}

	created, err := s.ShiftTypeRepository.Create(ctx, shifttype.ShiftType{
		Name:       req.Name,
		ColorHex:   req.ColorHex,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		return shifttype.ShiftTypeResponse{}, fmt.Errorf("failed to create shift type: %w", err)
	}

	return shifttype.NewShiftTypeResponse(created), nil
}

// Get implements shifttype.ShiftTypeService.
func (s *ShiftTypeServiceImpl) Get(ctx context.Context, id string) (shifttype.ShiftTypeResponse, error) {
	t, err := s.ShiftTypeRepository.GetByID(ctx, id)
	if err != nil {
		return shifttype.ShiftTypeResponse{}, err
	}
	return shifttype.NewShiftTypeResponse(t), nil
}

// List implements shifttype.ShiftTypeService.
func (s *ShiftTypeServiceImpl) List(ctx context.Context) ([]shifttype.ShiftTypeResponse, error) {
	types, err := s.ShiftTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}

	responses := make([]shifttype.ShiftTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, shifttype.NewShiftTypeResponse(t))
	}
	return responses, nil
}

// Update implements shifttype.ShiftTypeService.
func (s *ShiftTypeServiceImpl) Update(ctx context.Context, id string, req shifttype.SaveShiftTypeRequest) (shifttype.ShiftTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return shifttype.ShiftTypeResponse{}, err
	}

	t, err := s.ShiftTypeRepository.GetByID(ctx, id)
	if err != nil {
		return shifttype.ShiftTypeResponse{}, err
	}

	t.Name = req.Name
	t.ColorHex = req.ColorHex
	t.HourlyRate = req.HourlyRate

	if err := s.ShiftTypeRepository.Update(ctx, t); err != nil {
		return shifttype.ShiftTypeResponse{}, fmt.Errorf("failed to update shift type: %w", err)
	}

	return shifttype.NewShiftTypeResponse(t), nil
}

// Delete implements shifttype.ShiftTypeService. The reference cleanup and
// the delete run in one transaction so shifts never point at a type that
// is gone.
func (s *ShiftTypeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ShiftTypeRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.shiftRepo.ClearShiftType(txCtx, id); err != nil {
			return err
		}
		return s.ShiftTypeRepository.Delete(txCtx, id)
	})
}
