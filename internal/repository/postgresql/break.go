package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
)

type breakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) shift.BreakRepository {
	return &breakRepository{db: db}
}

// Create implements shift.BreakRepository.
func (r *breakRepository) Create(ctx context.Context, b shift.Break) (shift.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO breaks (shift_id, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		b.ShiftID,
		b.StartTime,
		b.EndTime,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		return shift.Break{}, fmt.Errorf("failed to create break: %w", err)
	}

	return b, nil
}

// GetByID implements shift.BreakRepository.
func (r *breakRepository) GetByID(ctx context.Context, id string) (shift.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, start_time, end_time, created_at, updated_at
		FROM breaks
		WHERE id = $1
	`

	var b shift.Break
	err := q.QueryRow(ctx, query, id).Scan(&b.ID, &b.ShiftID, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Break{}, shift.ErrBreakNotFound
		}
		return shift.Break{}, fmt.Errorf("failed to get break: %w", err)
	}

	return b, nil
}

// Update implements shift.BreakRepository.
func (r *breakRepository) Update(ctx context.Context, b shift.Break) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE breaks
		SET start_time = $2, end_time = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, b.ID, b.StartTime, b.EndTime)
	if err != nil {
		return fmt.Errorf("failed to update break: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrBreakNotFound
	}

	return nil
}

// Delete implements shift.BreakRepository.
func (r *breakRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM breaks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete break: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrBreakNotFound
	}

	return nil
}

// GetActiveByShift implements shift.BreakRepository.
func (r *breakRepository) GetActiveByShift(ctx context.Context, shiftID string) (*shift.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, start_time, end_time, created_at, updated_at
		FROM breaks
		WHERE shift_id = $1
		  AND end_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1
	`

	var b shift.Break
	err := q.QueryRow(ctx, query, shiftID).Scan(&b.ID, &b.ShiftID, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active break: %w", err)
	}

	return &b, nil
}

// CloseAllOpenForShift implements shift.BreakRepository.
func (r *breakRepository) CloseAllOpenForShift(ctx context.Context, shiftID string, end time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE breaks
		SET end_time = $2, updated_at = NOW()
		WHERE shift_id = $1
		  AND end_time IS NULL
	`, shiftID, end)
	if err != nil {
		return fmt.Errorf("failed to close open breaks: %w", err)
	}

	return nil
}
