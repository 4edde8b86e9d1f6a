package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/notification"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
	"github.com/maboeh/shifttracker-backend-go/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	shift.BreakRepository
	notificationSvc notification.Service
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	breakRepo shift.BreakRepository,
	notificationSvc notification.Service,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shiftRepo,
		BreakRepository: breakRepo,
		notificationSvc: notificationSvc,
	}
}

// ClockIn implements shift.ShiftService.
func (s *ShiftServiceImpl) ClockIn(ctx context.Context, req shift.ClockInRequest) (shift.ShiftResponse, error) {
	nowUTC := time.Now().UTC()

	active, err := s.ShiftRepository.GetActive(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to check for active shift: %w", err)
	}
	if active != nil {
		return shift.ShiftResponse{}, shift.ErrShiftAlreadyActive
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		StartTime:   nowUTC,
		ShiftTypeID: req.ShiftTypeID,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	if s.notificationSvc != nil {
		if err := s.notificationSvc.OnShiftStarted(ctx, created.ID, nowUTC); err != nil {
			slog.Error("Failed to arm shift-start reminders", "shift_id", created.ID, "error", err)
		}
	}

	return shift.NewShiftResponse(created, nowUTC), nil
}

// ClockOut implements shift.ShiftService. Any break still open is
// force-closed at the clock-out time.
func (s *ShiftServiceImpl) ClockOut(ctx context.Context) (shift.ShiftResponse, error) {
	nowUTC := time.Now().UTC()

	active, err := s.ShiftRepository.GetActive(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to check for active shift: %w", err)
	}
	if active == nil {
		return shift.ShiftResponse{}, shift.ErrNoActiveShift
	}

	// Force-closing the open break and ending the shift must land together
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.BreakRepository.CloseAllOpenForShift(txCtx, active.ID, nowUTC); err != nil {
			return fmt.Errorf("failed to close open breaks: %w", err)
		}

		active.EndTime = &nowUTC
		if err := s.ShiftRepository.Update(txCtx, *active); err != nil {
			return fmt.Errorf("failed to end shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	// Reload so the response carries the force-closed breaks
	ended, err := s.ShiftRepository.GetByID(ctx, active.ID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to reload shift: %w", err)
	}

	if s.notificationSvc != nil {
		if err := s.notificationSvc.OnShiftEnded(ctx, ended.ID); err != nil {
			slog.Error("Failed to cancel shift reminders", "shift_id", ended.ID, "error", err)
		}
	}

	return shift.NewShiftResponse(ended, nowUTC), nil
}

// StartBreak implements shift.ShiftService.
func (s *ShiftServiceImpl) StartBreak(ctx context.Context) (shift.ShiftResponse, error) {
	nowUTC := time.Now().UTC()

	active, err := s.ShiftRepository.GetActive(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to check for active shift: %w", err)
	}
	if active == nil {
		return shift.ShiftResponse{}, shift.ErrNoActiveShift
	}
	if active.HasActiveBreak() {
		return shift.ShiftResponse{}, shift.ErrBreakAlreadyActive
	}

	if _, err := s.BreakRepository.Create(ctx, shift.Break{
		ShiftID:   active.ID,
		StartTime: nowUTC,
	}); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to start break: %w", err)
	}

	if s.notificationSvc != nil {
		if err := s.notificationSvc.OnBreakStarted(ctx, active.ID); err != nil {
			slog.Error("Failed to handle break-start trigger", "shift_id", active.ID, "error", err)
		}
	}

	reloaded, err := s.ShiftRepository.GetByID(ctx, active.ID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to reload shift: %w", err)
	}

	return shift.NewShiftResponse(reloaded, nowUTC), nil
}

// EndBreak implements shift.ShiftService.
func (s *ShiftServiceImpl) EndBreak(ctx context.Context) (shift.ShiftResponse, error) {
	nowUTC := time.Now().UTC()

	active, err := s.ShiftRepository.GetActive(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to check for active shift: %w", err)
	}
	if active == nil {
		return shift.ShiftResponse{}, shift.ErrNoActiveShift
	}

	open, err := s.BreakRepository.GetActiveByShift(ctx, active.ID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to find open break: %w", err)
	}
	if open == nil {
		return shift.ShiftResponse{}, shift.ErrNoActiveBreak
	}

	open.EndTime = &nowUTC
	if err := s.BreakRepository.Update(ctx, *open); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to end break: %w", err)
	}

	reloaded, err := s.ShiftRepository.GetByID(ctx, active.ID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to reload shift: %w", err)
	}

	if s.notificationSvc != nil {
		if err := s.notificationSvc.OnBreakEnded(ctx, reloaded.ID, reloaded.NetDuration(nowUTC), nowUTC); err != nil {
			slog.Error("Failed to re-arm break reminder", "shift_id", reloaded.ID, "error", err)
		}
	}

	return shift.NewShiftResponse(reloaded, nowUTC), nil
}

// GetActive implements shift.ShiftService.
func (s *ShiftServiceImpl) GetActive(ctx context.Context) (*shift.ShiftResponse, error) {
	active, err := s.ShiftRepository.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}
	if active == nil {
		return nil, nil
	}
	resp := shift.NewShiftResponse(*active, time.Now().UTC())
	return &resp, nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.NewShiftResponse(found, time.Now().UTC()), nil
}

// Update implements shift.ShiftService. End-before-start is not rejected;
// derived durations floor at zero and the response carries a warning
// (permissive policy, matching manual-edit behavior elsewhere).
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	existing.StartTime = req.ParsedStart.UTC()
	if req.ParsedEnd != nil {
		end := req.ParsedEnd.UTC()
		existing.EndTime = &end
	} else {
		existing.EndTime = nil
	}
	existing.ShiftTypeID = req.ShiftTypeID

	if err := s.ShiftRepository.Update(ctx, existing); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	reloaded, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to reload shift: %w", err)
	}

	return shift.NewShiftResponse(reloaded, time.Now().UTC()), nil
}

// Delete implements shift.ShiftService. Breaks cascade at the repository.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	if s.notificationSvc != nil {
		if err := s.notificationSvc.OnShiftEnded(ctx, id); err != nil {
			slog.Error("Failed to cancel reminders for deleted shift", "shift_id", id, "error", err)
		}
	}

	return nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context, filter shift.ListFilter) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	now := time.Now().UTC()
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.NewShiftResponse(sh, now))
	}
	return responses, nil
}

// UpdateBreak implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateBreak(ctx context.Context, breakID string, req shift.UpdateBreakRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.BreakRepository.GetByID(ctx, breakID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	existing.StartTime = req.ParsedStart.UTC()
	if req.ParsedEnd != nil {
		end := req.ParsedEnd.UTC()
		existing.EndTime = &end
	} else {
		existing.EndTime = nil
	}

	if err := s.BreakRepository.Update(ctx, existing); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update break: %w", err)
	}

	reloaded, err := s.ShiftRepository.GetByID(ctx, existing.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to reload shift: %w", err)
	}

	return shift.NewShiftResponse(reloaded, time.Now().UTC()), nil
}

// DeleteBreak implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteBreak(ctx context.Context, breakID string) error {
	if _, err := s.BreakRepository.GetByID(ctx, breakID); err != nil {
		return err
	}
	if err := s.BreakRepository.Delete(ctx, breakID); err != nil {
		return fmt.Errorf("failed to delete break: %w", err)
	}
	return nil
}
