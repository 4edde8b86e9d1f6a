package export

import (
	"context"
	"io"
)

// Result describes a completed export.
type Result struct {
	FileName   string `json:"file_name"`
	Path       string `json:"path"`
	ShiftCount int    `json:"shift_count"`
	Encrypted  bool   `json:"encrypted"`
	RangeLabel string `json:"range_label"`
}

// ExportService generates export documents. The service is stateless and
// safe to call concurrently; each call touches only its inputs and writes
// one new file.
type ExportService interface {
	// Export validates the options, filters shifts by the resolved date
	// range, generates the document, optionally encrypts it, and appends
	// an ExportRecord. Failed runs leave no partial file behind.
	Export(ctx context.Context, opts Options) (Result, error)

	// Download streams a stored export file as-is. Encrypted files come
	// back encrypted; Decrypt is the only way to their plaintext.
	Download(ctx context.Context, fileName string) (io.ReadCloser, error)

	// Decrypt reverses Export's encryption. It fails closed: wrong
	// passwords or truncated input never produce partial plaintext.
	Decrypt(ctx context.Context, fileName string, password string) ([]byte, error)

	// History lists past export records, most recent first.
	History(ctx context.Context, limit int) ([]ExportRecord, error)
}
