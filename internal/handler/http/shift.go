package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	GetActive(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateBreak(w http.ResponseWriter, r *http.Request)
	DeleteBreak(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// ClockIn implements ShiftHandler.
func (h *ShiftHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req shift.ClockInRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	resp, err := h.shiftService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("Failed to clock in", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift started", resp)
}

// ClockOut implements ShiftHandler.
func (h *ShiftHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.ClockOut(r.Context())
	if err != nil {
		slog.Error("Failed to clock out", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift ended", resp)
}

// StartBreak implements ShiftHandler.
func (h *ShiftHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.StartBreak(r.Context())
	if err != nil {
		slog.Error("Failed to start break", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", resp)
}

// EndBreak implements ShiftHandler.
func (h *ShiftHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.EndBreak(r.Context())
	if err != nil {
		slog.Error("Failed to end break", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", resp)
}

// GetActive implements ShiftHandler. Returns data null when no shift is
// running so clients can poll without hitting 404s.
func (h *ShiftHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.GetActive(r.Context())
	if err != nil {
		slog.Error("Failed to get active shift", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.shiftService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", resp)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.shiftService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list shifts", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateBreak implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateBreak(w http.ResponseWriter, r *http.Request) {
	breakID := chi.URLParam(r, "id")

	var req shift.UpdateBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.UpdateBreak(r.Context(), breakID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break updated", resp)
}

// DeleteBreak implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteBreak(w http.ResponseWriter, r *http.Request) {
	breakID := chi.URLParam(r, "id")

	if err := h.shiftService.DeleteBreak(r.Context(), breakID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break deleted", nil)
}

func parseListFilter(r *http.Request) (shift.ListFilter, error) {
	var filter shift.ListFilter
	q := r.URL.Query()

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errInvalidQueryParam("from")
		}
		filter.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errInvalidQueryParam("to")
		}
		filter.To = &t
	}
	if v := q.Get("shift_type_id"); v != "" {
		filter.ShiftTypeID = &v
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, errInvalidQueryParam("limit")
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, errInvalidQueryParam("offset")
		}
		filter.Offset = n
	}

	return filter, nil
}

type queryParamError string

func (e queryParamError) Error() string {
	return "invalid query parameter: " + string(e)
}

func errInvalidQueryParam(name string) error {
	return queryParamError(name)
}
