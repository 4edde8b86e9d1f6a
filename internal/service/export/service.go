package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/export"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/crypto"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/storage"
)

const encryptedSuffix = ".enc"

type ExportServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	settingsRepo settings.SettingsRepository
	recordRepo   export.ExportRecordRepository
	files        storage.FileStorage
	now          func() time.Time
}

var _ export.ExportService = (*ExportServiceImpl)(nil)

func NewExportService(
	shiftRepo shift.ShiftRepository,
	settingsRepo settings.SettingsRepository,
	recordRepo export.ExportRecordRepository,
	files storage.FileStorage,
) *ExportServiceImpl {
	return &ExportServiceImpl{
		shiftRepo:    shiftRepo,
		settingsRepo: settingsRepo,
		recordRepo:   recordRepo,
		files:        files,
		now:          time.Now,
	}
}

// Export runs the full pipeline: validate, filter, generate, optionally
// encrypt, persist the file, append the audit record. Validation failures
// return before any file is written.
func (s *ExportServiceImpl) Export(ctx context.Context, opts export.Options) (export.Result, error) {
	now := s.now()

	if len(opts.Fields) == 0 {
		return export.Result{}, export.ErrNoFieldsSelected
	}

	dateRange := opts.DateRange(now)
	if !dateRange.End.After(dateRange.Start) {
		return export.Result{}, export.ErrInvalidDateRange
	}

	shifts, err := s.shiftRepo.ListByRange(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to load shifts for export: %w", err)
	}
	if len(shifts) == 0 {
		return export.Result{}, export.ErrNoShifts
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to load settings for export: %w", err)
	}

	document, err := s.generate(shifts, opts, cfg, now)
	if err != nil {
		return export.Result{}, err
	}

	fileName := fmt.Sprintf("ShiftTracker_Export_%s.%s", now.Format("2006-01-02"), opts.Format)

	encrypted := opts.EncryptionPassword != ""
	if encrypted {
		document, err = crypto.Encrypt(document, opts.EncryptionPassword)
		if err != nil {
			return export.Result{}, fmt.Errorf("%w: %v", export.ErrEncryptionFailed, err)
		}
		fileName += encryptedSuffix
	}

	path, err := s.files.Save(ctx, bytes.NewReader(document), fileName)
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to store export file: %w", err)
	}

	rangeLabel := opts.RangeLabel(now)
	rec := export.ExportRecord{
		ExportedAt:     now,
		Format:         string(opts.Format),
		ShiftCount:     len(shifts),
		DateRangeLabel: rangeLabel,
		FileName:       fileName,
		Encrypted:      encrypted,
	}
	if _, err := s.recordRepo.Create(ctx, rec); err != nil {
		// The file exists and is usable; a missing audit row is logged,
		// not surfaced.
		slog.Error("failed to record export", "file", fileName, "error", err)
	}

	return export.Result{
		FileName:   fileName,
		Path:       path,
		ShiftCount: len(shifts),
		Encrypted:  encrypted,
		RangeLabel: rangeLabel,
	}, nil
}

func (s *ExportServiceImpl) generate(shifts []shift.Shift, opts export.Options, cfg settings.Settings, now time.Time) ([]byte, error) {
	switch opts.Format {
	case export.FormatCSV:
		return generateCSV(shifts, opts, now), nil
	case export.FormatPDF:
		document, err := generatePDF(shifts, opts, cfg, now)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", export.ErrGenerationFailed, err)
		}
		return document, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", export.ErrGenerationFailed, opts.Format)
	}
}

// Download implements export.ExportService. The caller owns the
// returned reader and must close it.
func (s *ExportServiceImpl) Download(ctx context.Context, fileName string) (io.ReadCloser, error) {
	exists, err := s.files.Exists(ctx, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to check export file: %w", err)
	}
	if !exists {
		return nil, export.ErrExportNotFound
	}

	file, err := s.files.Open(ctx, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	return file, nil
}

// Decrypt opens a stored encrypted export and returns the plaintext
// document. Wrong passwords and damaged files fail closed.
func (s *ExportServiceImpl) Decrypt(ctx context.Context, fileName string, password string) ([]byte, error) {
	file, err := s.files.Open(ctx, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	plain, err := crypto.Decrypt(data, password)
	if err != nil {
		return nil, export.ErrDecryptionFailed
	}
	return plain, nil
}

func (s *ExportServiceImpl) History(ctx context.Context, limit int) ([]export.ExportRecord, error) {
	records, err := s.recordRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list export records: %w", err)
	}
	return records, nil
}
