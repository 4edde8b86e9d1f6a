package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/notification"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
)

type reminderRepository struct {
	db *database.DB
}

func NewReminderRepository(db *database.DB) notification.ReminderRepository {
	return &reminderRepository{db: db}
}

// Schedule implements notification.ReminderRepository.
func (r *reminderRepository) Schedule(ctx context.Context, rem notification.Reminder) (notification.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	if rem.ID == "" {
		rem.ID = uuid.New().String()
	}

	query := `
		INSERT INTO reminders (id, kind, shift_id, fire_at, title, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		rem.ID,
		rem.Kind,
		rem.ShiftID,
		rem.FireAt,
		rem.Title,
		rem.Message,
	).Scan(&rem.CreatedAt)

	if err != nil {
		return notification.Reminder{}, fmt.Errorf("failed to schedule reminder: %w", err)
	}

	return rem, nil
}

// CancelByShift implements notification.ReminderRepository.
func (r *reminderRepository) CancelByShift(ctx context.Context, shiftID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM reminders WHERE shift_id = $1`, shiftID); err != nil {
		return fmt.Errorf("failed to cancel reminders: %w", err)
	}

	return nil
}

// CancelKind implements notification.ReminderRepository.
func (r *reminderRepository) CancelKind(ctx context.Context, shiftID string, kind notification.ReminderKind) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM reminders WHERE shift_id = $1 AND kind = $2`, shiftID, kind); err != nil {
		return fmt.Errorf("failed to cancel reminders: %w", err)
	}

	return nil
}

// CancelStanding implements notification.ReminderRepository.
func (r *reminderRepository) CancelStanding(ctx context.Context, kind notification.ReminderKind) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM reminders WHERE kind = $1 AND shift_id IS NULL`, kind); err != nil {
		return fmt.Errorf("failed to cancel standing reminders: %w", err)
	}

	return nil
}

// ListDue implements notification.ReminderRepository.
func (r *reminderRepository) ListDue(ctx context.Context, now time.Time) ([]notification.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, kind, shift_id, fire_at, title, message, created_at
		FROM reminders
		WHERE fire_at <= $1
		ORDER BY fire_at ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	defer rows.Close()

	var reminders []notification.Reminder
	for rows.Next() {
		var rem notification.Reminder
		err := rows.Scan(&rem.ID, &rem.Kind, &rem.ShiftID, &rem.FireAt, &rem.Title, &rem.Message, &rem.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}

// Delete implements notification.ReminderRepository.
func (r *reminderRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}
