package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/template"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
)

type templateRepository struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.TemplateRepository {
	return &templateRepository{db: db}
}

// Create implements template.TemplateRepository.
func (r *templateRepository) Create(ctx context.Context, t template.ShiftTemplate) (template.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_templates (
			name, shift_type_id, default_start_hour, default_start_minute,
			default_duration_hours, is_active
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.Name,
		t.ShiftTypeID,
		t.DefaultStartHour,
		t.DefaultStartMinute,
		t.DefaultDurationHours,
		t.IsActive,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return template.ShiftTemplate{}, fmt.Errorf("failed to create template: %w", err)
	}

	return t, nil
}

// GetByID implements template.TemplateRepository.
func (r *templateRepository) GetByID(ctx context.Context, id string) (template.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, shift_type_id, default_start_hour, default_start_minute,
			   default_duration_hours, is_active, created_at, updated_at
		FROM shift_templates
		WHERE id = $1
	`

	var t template.ShiftTemplate
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.ShiftTypeID, &t.DefaultStartHour, &t.DefaultStartMinute,
		&t.DefaultDurationHours, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return template.ShiftTemplate{}, template.ErrTemplateNotFound
		}
		return template.ShiftTemplate{}, fmt.Errorf("failed to get template: %w", err)
	}

	return t, nil
}

// List implements template.TemplateRepository.
func (r *templateRepository) List(ctx context.Context, activeOnly bool) ([]template.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, shift_type_id, default_start_hour, default_start_minute,
			   default_duration_hours, is_active, created_at, updated_at
		FROM shift_templates
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []template.ShiftTemplate
	for rows.Next() {
		var t template.ShiftTemplate
		err := rows.Scan(
			&t.ID, &t.Name, &t.ShiftTypeID, &t.DefaultStartHour, &t.DefaultStartMinute,
			&t.DefaultDurationHours, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}

	return templates, nil
}

// Update implements template.TemplateRepository.
func (r *templateRepository) Update(ctx context.Context, t template.ShiftTemplate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_templates
		SET name = $2, shift_type_id = $3, default_start_hour = $4,
			default_start_minute = $5, default_duration_hours = $6,
			is_active = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		t.ID, t.Name, t.ShiftTypeID, t.DefaultStartHour,
		t.DefaultStartMinute, t.DefaultDurationHours, t.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return template.ErrTemplateNotFound
	}

	return nil
}

// Delete implements template.TemplateRepository.
func (r *templateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return template.ErrTemplateNotFound
	}

	return nil
}
