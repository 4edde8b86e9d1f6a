package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/notification"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
)

// forgotClockOutAfter is how long a shift may stay open before the
// standing "did you forget to clock out?" reminder fires.
const forgotClockOutAfter = 10 * time.Hour

// Weekly summary schedule: Sunday evening.
const (
	weeklySummaryWeekday = time.Sunday
	weeklySummaryHour    = 18
)

type ReminderJobs struct {
	shiftRepo    shift.ShiftRepository
	reminderRepo notification.ReminderRepository
	now          func() time.Time
}

func NewReminderJobs(shiftRepo shift.ShiftRepository, reminderRepo notification.ReminderRepository) *ReminderJobs {
	return &ReminderJobs{
		shiftRepo:    shiftRepo,
		reminderRepo: reminderRepo,
		now:          time.Now,
	}
}

func (j *ReminderJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("forgot_clock_out_check", 15*time.Minute, j.CheckForgotClockOut)
	scheduler.AddJob("weekly_summary", 1*time.Hour, j.ScheduleWeeklySummary)
}

// CheckForgotClockOut queues a reminder once the active shift has been
// running for 10 hours. The queue de-duplicates per shift via CancelKind.
func (j *ReminderJobs) CheckForgotClockOut(ctx context.Context) error {
	active, err := j.shiftRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active shift: %w", err)
	}
	if active == nil {
		return nil
	}

	now := j.now().UTC()
	if active.Duration(now) < forgotClockOutAfter {
		return nil
	}

	if err := j.reminderRepo.CancelKind(ctx, active.ID, notification.KindForgotClockOut); err != nil {
		return fmt.Errorf("failed to clear previous reminder: %w", err)
	}

	_, err = j.reminderRepo.Schedule(ctx, notification.Reminder{
		Kind:    notification.KindForgotClockOut,
		ShiftID: &active.ID,
		FireAt:  now,
		Title:   "Still working?",
		Message: "Your shift has been running for over 10 hours. Did you forget to clock out?",
	})
	if err != nil {
		return fmt.Errorf("failed to schedule forgot-clock-out reminder: %w", err)
	}

	slog.Info("Cron: queued forgot-clock-out reminder", "shift_id", active.ID)
	return nil
}

// ScheduleWeeklySummary fires the weekly digest on the fixed weekday and
// hour. Runs hourly and only acts in the matching hour; any digest still
// queued from an earlier run is replaced, not duplicated.
func (j *ReminderJobs) ScheduleWeeklySummary(ctx context.Context) error {
	now := j.now().UTC()
	if now.Weekday() != weeklySummaryWeekday || now.Hour() != weeklySummaryHour {
		return nil
	}

	if err := j.reminderRepo.CancelStanding(ctx, notification.KindWeeklySummary); err != nil {
		return fmt.Errorf("failed to clear previous weekly summary: %w", err)
	}

	_, err := j.reminderRepo.Schedule(ctx, notification.Reminder{
		Kind:    notification.KindWeeklySummary,
		FireAt:  now,
		Title:   "Your week in review",
		Message: "Your weekly shift summary is ready.",
	})
	if err != nil {
		return fmt.Errorf("failed to schedule weekly summary: %w", err)
	}

	slog.Info("Cron: queued weekly summary")
	return nil
}
