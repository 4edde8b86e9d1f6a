package export

import (
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

// ExportRequest is the API form of Options.
type ExportRequest struct {
	Format          string   `json:"format"`
	DateRangePreset string   `json:"date_range_preset"`
	CustomStart     *string  `json:"custom_start"`
	CustomEnd       *string  `json:"custom_end"`
	Fields          []string `json:"fields"`
	IncludeHeaders  *bool    `json:"include_headers"`
	Password        string   `json:"password"`
}

var validFields = map[Field]bool{
	FieldDate:      true,
	FieldStartTime: true,
	FieldEndTime:   true,
	FieldDuration:  true,
	FieldShiftType: true,
	FieldBreakTime: true,
}

var validPresets = map[DateRangePreset]bool{
	PresetThisWeek:  true,
	PresetThisMonth: true,
	PresetLastMonth: true,
	PresetThisYear:  true,
	PresetCustom:    true,
}

// Validate checks the request and converts it to Options. Omitted fields
// fall back to the full default selection.
func (r *ExportRequest) Validate() (Options, error) {
	var errs validator.ValidationErrors

	format := Format(r.Format)
	if format != FormatCSV && format != FormatPDF {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or pdf",
		})
	}

	preset := DateRangePreset(r.DateRangePreset)
	if !validPresets[preset] {
		errs = append(errs, validator.ValidationError{
			Field:   "date_range_preset",
			Message: "unknown date range preset",
		})
	}

	opts := NewOptions(format, preset)

	if len(r.Fields) > 0 {
		fields := make([]Field, 0, len(r.Fields))
		for _, f := range r.Fields {
			field := Field(f)
			if !validFields[field] {
				errs = append(errs, validator.ValidationError{
					Field:   "fields",
					Message: "unknown export field: " + f,
				})
				continue
			}
			fields = append(fields, field)
		}
		opts.Fields = fields
	}

	if r.IncludeHeaders != nil {
		opts.IncludeHeaders = *r.IncludeHeaders
	}
	opts.EncryptionPassword = r.Password

	if preset == PresetCustom {
		start, startOK := parseOptionalTime(r.CustomStart)
		end, endOK := parseOptionalTime(r.CustomEnd)
		if !startOK || !endOK || start == nil || end == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "custom_start",
				Message: "custom preset requires custom_start and custom_end as ISO8601 timestamps",
			})
		} else {
			opts.CustomDateRange = &DateRange{Start: *start, End: *end}
		}
	}

	if len(errs) > 0 {
		return Options{}, errs
	}

	return opts, nil
}

func parseOptionalTime(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, ok := validator.IsValidDateTime(*s)
	if !ok {
		return nil, false
	}
	return &t, true
}

// DecryptRequest asks for the plaintext of an encrypted export.
type DecryptRequest struct {
	Password string `json:"password"`
}

func (r *DecryptRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ExportRecordResponse is the API representation of an audit entry.
type ExportRecordResponse struct {
	ID             string    `json:"id"`
	ExportedAt     time.Time `json:"exported_at"`
	Format         string    `json:"format"`
	ShiftCount     int       `json:"shift_count"`
	DateRangeLabel string    `json:"date_range_label"`
	FileName       string    `json:"file_name"`
	Encrypted      bool      `json:"encrypted"`
}

func NewExportRecordResponse(rec ExportRecord) ExportRecordResponse {
	return ExportRecordResponse{
		ID:             rec.ID,
		ExportedAt:     rec.ExportedAt,
		Format:         rec.Format,
		ShiftCount:     rec.ShiftCount,
		DateRangeLabel: rec.DateRangeLabel,
		FileName:       rec.FileName,
		Encrypted:      rec.Encrypted,
	}
}
