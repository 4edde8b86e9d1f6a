package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/notification"
)

// breakReminderAfter is the net working time after which the break
// reminder fires.
const breakReminderAfter = 6 * time.Hour

type NotificationServiceImpl struct {
	reminderRepo notification.ReminderRepository
	now          func() time.Time
}

var _ notification.Service = (*NotificationServiceImpl)(nil)

func NewNotificationService(reminderRepo notification.ReminderRepository) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		reminderRepo: reminderRepo,
		now:          time.Now,
	}
}

// OnShiftStarted arms the break reminder 6h out. The forgot-clock-out
// check runs on the scheduler, not here.
func (s *NotificationServiceImpl) OnShiftStarted(ctx context.Context, shiftID string, startedAt time.Time) error {
	_, err := s.reminderRepo.Schedule(ctx, notification.Reminder{
		Kind:    notification.KindBreakReminder,
		ShiftID: &shiftID,
		FireAt:  startedAt.Add(breakReminderAfter),
		Title:   "Time for a break",
		Message: "You have been working for 6 hours. Take a break.",
	})
	if err != nil {
		return fmt.Errorf("failed to schedule break reminder: %w", err)
	}
	return nil
}

func (s *NotificationServiceImpl) OnShiftEnded(ctx context.Context, shiftID string) error {
	if err := s.reminderRepo.CancelByShift(ctx, shiftID); err != nil {
		return fmt.Errorf("failed to cancel reminders for shift: %w", err)
	}
	return nil
}

// OnBreakStarted suspends the break reminder; OnBreakEnded re-arms it.
func (s *NotificationServiceImpl) OnBreakStarted(ctx context.Context, shiftID string) error {
	if err := s.reminderRepo.CancelKind(ctx, shiftID, notification.KindBreakReminder); err != nil {
		return fmt.Errorf("failed to cancel break reminder: %w", err)
	}
	return nil
}

// OnBreakEnded re-arms the break reminder with the net work already done
// counted against the 6h threshold. A shift past the threshold gets the
// reminder immediately.
func (s *NotificationServiceImpl) OnBreakEnded(ctx context.Context, shiftID string, netWorkSoFar time.Duration, endedAt time.Time) error {
	if err := s.reminderRepo.CancelKind(ctx, shiftID, notification.KindBreakReminder); err != nil {
		return fmt.Errorf("failed to cancel break reminder: %w", err)
	}

	remaining := breakReminderAfter - netWorkSoFar
	if remaining < 0 {
		remaining = 0
	}

	_, err := s.reminderRepo.Schedule(ctx, notification.Reminder{
		Kind:    notification.KindBreakReminder,
		ShiftID: &shiftID,
		FireAt:  endedAt.Add(remaining),
		Title:   "Time for a break",
		Message: "You have been working for 6 hours. Take a break.",
	})
	if err != nil {
		return fmt.Errorf("failed to reschedule break reminder: %w", err)
	}
	return nil
}

// DueReminders implements notification.Service.
func (s *NotificationServiceImpl) DueReminders(ctx context.Context) ([]notification.Reminder, error) {
	due, err := s.reminderRepo.ListDue(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	return due, nil
}

// Acknowledge implements notification.Service. Acknowledging an unknown
// id is a no-op.
func (s *NotificationServiceImpl) Acknowledge(ctx context.Context, id string) error {
	if err := s.reminderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}
