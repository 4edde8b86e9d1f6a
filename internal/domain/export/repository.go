package export

import "context"

// ExportRecordRepository appends and lists export audit entries.
// Records are insert-only.
type ExportRecordRepository interface {
	Create(ctx context.Context, rec ExportRecord) (ExportRecord, error)
	List(ctx context.Context, limit int) ([]ExportRecord, error)
}
