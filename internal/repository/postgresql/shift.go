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

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	s.id, s.start_time, s.end_time, s.shift_type_id,
	s.created_at, s.updated_at,
	t.name AS shift_type_name
`

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (start_time, end_time, shift_type_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.StartTime,
		s.EndTime,
		s.ShiftTypeID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN shift_types t ON t.id = s.shift_type_id
		WHERE s.id = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.StartTime, &s.EndTime, &s.ShiftTypeID,
		&s.CreatedAt, &s.UpdatedAt,
		&s.ShiftTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	if err := r.loadBreaks(ctx, &s); err != nil {
		return shift.Shift{}, err
	}

	return s, nil
}

// GetActive implements shift.ShiftRepository.
func (r *shiftRepository) GetActive(ctx context.Context) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN shift_types t ON t.id = s.shift_type_id
		WHERE s.end_time IS NULL
		ORDER BY s.start_time DESC
		LIMIT 1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.StartTime, &s.EndTime, &s.ShiftTypeID,
		&s.CreatedAt, &s.UpdatedAt,
		&s.ShiftTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}

	if err := r.loadBreaks(ctx, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET start_time = $2, end_time = $3, shift_type_id = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.StartTime, s.EndTime, s.ShiftTypeID)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository. Breaks cascade via the
// foreign key.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, filter shift.ListFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN shift_types t ON t.id = s.shift_type_id
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.From != nil {
		query += fmt.Sprintf(" AND s.start_time >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND s.start_time < $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	if filter.ShiftTypeID != nil {
		query += fmt.Sprintf(" AND s.shift_type_id = $%d", argPos)
		args = append(args, *filter.ShiftTypeID)
		argPos++
	}

	query += " ORDER BY s.start_time DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
		argPos++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argPos)
		args = append(args, filter.Offset)
	}

	return r.queryShifts(ctx, q, query, args...)
}

// ListByRange implements shift.ShiftRepository.
func (r *shiftRepository) ListByRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN shift_types t ON t.id = s.shift_type_id
		WHERE s.start_time >= $1 AND s.start_time < $2
		ORDER BY s.start_time ASC
	`

	return r.queryShifts(ctx, q, query, start, end)
}

// ClearShiftType implements shift.ShiftRepository.
func (r *shiftRepository) ClearShiftType(ctx context.Context, shiftTypeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE shifts
		SET shift_type_id = NULL, updated_at = NOW()
		WHERE shift_type_id = $1
	`, shiftTypeID)
	if err != nil {
		return fmt.Errorf("failed to clear shift type references: %w", err)
	}

	return nil
}

func (r *shiftRepository) queryShifts(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]shift.Shift, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID, &s.StartTime, &s.EndTime, &s.ShiftTypeID,
			&s.CreatedAt, &s.UpdatedAt,
			&s.ShiftTypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	if err := r.loadBreaksForAll(ctx, shifts); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *shiftRepository) loadBreaks(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, shift_id, start_time, end_time, created_at, updated_at
		FROM breaks
		WHERE shift_id = $1
		ORDER BY start_time ASC
	`, s.ID)
	if err != nil {
		return fmt.Errorf("failed to load breaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b shift.Break
		if err := rows.Scan(&b.ID, &b.ShiftID, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan break: %w", err)
		}
		s.Breaks = append(s.Breaks, b)
	}
	return rows.Err()
}

// loadBreaksForAll fetches breaks for a shift listing in one query.
func (r *shiftRepository) loadBreaksForAll(ctx context.Context, shifts []shift.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	ids := make([]string, len(shifts))
	index := make(map[string]*shift.Shift, len(shifts))
	for i := range shifts {
		ids[i] = shifts[i].ID
		index[shifts[i].ID] = &shifts[i]
	}

	rows, err := q.Query(ctx, `
		SELECT id, shift_id, start_time, end_time, created_at, updated_at
		FROM breaks
		WHERE shift_id = ANY($1)
		ORDER BY start_time ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to load breaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b shift.Break
		if err := rows.Scan(&b.ID, &b.ShiftID, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan break: %w", err)
		}
		if s, ok := index[b.ShiftID]; ok {
			s.Breaks = append(s.Breaks, b)
		}
	}
	return rows.Err()
}
