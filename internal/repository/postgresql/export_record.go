package postgresql

import (
	"context"
	"fmt"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/export"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
)

type exportRecordRepository struct {
	db *database.DB
}

func NewExportRecordRepository(db *database.DB) export.ExportRecordRepository {
	return &exportRecordRepository{db: db}
}

// Create implements export.ExportRecordRepository.
func (r *exportRecordRepository) Create(ctx context.Context, rec export.ExportRecord) (export.ExportRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO export_records (
			exported_at, format, shift_count, date_range_label, file_name, encrypted
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		rec.ExportedAt,
		rec.Format,
		rec.ShiftCount,
		rec.DateRangeLabel,
		rec.FileName,
		rec.Encrypted,
	).Scan(&rec.ID)

	if err != nil {
		return export.ExportRecord{}, fmt.Errorf("failed to create export record: %w", err)
	}

	return rec, nil
}

// List implements export.ExportRecordRepository.
func (r *exportRecordRepository) List(ctx context.Context, limit int) ([]export.ExportRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, exported_at, format, shift_count, date_range_label, file_name, encrypted
		FROM export_records
		ORDER BY exported_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list export records: %w", err)
	}
	defer rows.Close()

	var records []export.ExportRecord
	for rows.Next() {
		var rec export.ExportRecord
		err := rows.Scan(
			&rec.ID, &rec.ExportedAt, &rec.Format, &rec.ShiftCount,
			&rec.DateRangeLabel, &rec.FileName, &rec.Encrypted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate export records: %w", err)
	}

	return records, nil
}
