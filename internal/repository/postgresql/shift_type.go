package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
)

type shiftTypeRepository struct {
	db *database.DB
}

func NewShiftTypeRepository(db *database.DB) shifttype.ShiftTypeRepository {
	return &shiftTypeRepository{db: db}
}

// Create implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepository) Create(ctx context.Context, t shifttype.ShiftType) (shifttype.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_types (name, color_hex, hourly_rate)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.Name,
		t.ColorHex,
		t.HourlyRate,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return shifttype.ShiftType{}, fmt.Errorf("failed to create shift type: %w", err)
	}

	return t, nil
}

// GetByID implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepository) GetByID(ctx context.Context, id string) (shifttype.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, color_hex, hourly_rate, created_at, updated_at
		FROM shift_types
		WHERE id = $1
	`

	var t shifttype.ShiftType
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.ColorHex, &t.HourlyRate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shifttype.ShiftType{}, shifttype.ErrShiftTypeNotFound
		}
		return shifttype.ShiftType{}, fmt.Errorf("failed to get shift type: %w", err)
	}

	return t, nil
}

// List implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepository) List(ctx context.Context) ([]shifttype.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, color_hex, hourly_rate, created_at, updated_at
		FROM shift_types
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	defer rows.Close()

	var types []shifttype.ShiftType
	for rows.Next() {
		var t shifttype.ShiftType
		if err := rows.Scan(&t.ID, &t.Name, &t.ColorHex, &t.HourlyRate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift types: %w", err)
	}

	return types, nil
}

// Update implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepository) Update(ctx context.Context, t shifttype.ShiftType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_types
		SET name = $2, color_hex = $3, hourly_rate = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, t.ID, t.Name, t.ColorHex, t.HourlyRate)
	if err != nil {
		return fmt.Errorf("failed to update shift type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shifttype.ErrShiftTypeNotFound
	}

	return nil
}

// Delete implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shifttype.ErrShiftTypeNotFound
	}

	return nil
}

// Count implements shifttype.ShiftTypeRepository.
func (r *shiftTypeRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM shift_types`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count shift types: %w", err)
	}

	return count, nil
}
