package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/export"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
)

type ExportHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Decrypt(w http.ResponseWriter, r *http.Request)
}

type ExportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &ExportHandlerImpl{exportService: exportService}
}

// Create implements ExportHandler.
func (h *ExportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req export.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	opts, err := req.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.exportService.Export(r.Context(), opts)
	if err != nil {
		slog.Error("Failed to run export", "format", req.Format, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Export generated", result)
}

// History implements ExportHandler.
func (h *ExportHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.BadRequest(w, "invalid query parameter: limit", nil)
			return
		}
		limit = n
	}

	records, err := h.exportService.History(r.Context(), limit)
	if err != nil {
		slog.Error("Failed to list export history", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]export.ExportRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, export.NewExportRecordResponse(rec))
	}

	response.Success(w, responses)
}

// Download implements ExportHandler. Files are streamed exactly as
// stored, so an encrypted export downloads as its ciphertext.
func (h *ExportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, "file")

	file, err := h.exportService.Download(r.Context(), fileName)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	contentType := contentTypeFor(fileName)
	if strings.HasSuffix(fileName, ".enc") {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		slog.Error("Failed to stream export download", "file", fileName, "error", err)
	}
}

// Decrypt implements ExportHandler. The plaintext document is streamed
// back as a download, never stored.
func (h *ExportHandlerImpl) Decrypt(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, "file")

	var req export.DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	plain, err := h.exportService.Decrypt(r.Context(), fileName, req.Password)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(fileName))
	w.Header().Set("Content-Disposition", "attachment; filename=\""+strings.TrimSuffix(fileName, ".enc")+"\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(plain); err != nil {
		slog.Error("Failed to write decrypted export", "file", fileName, "error", err)
	}
}

func contentTypeFor(fileName string) string {
	name := strings.TrimSuffix(fileName, ".enc")
	switch {
	case strings.HasSuffix(name, ".csv"):
		return "text/csv; charset=utf-8"
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
