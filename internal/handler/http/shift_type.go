package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
)

type ShiftTypeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ShiftTypeHandlerImpl struct {
	shiftTypeService shifttype.ShiftTypeService
}

func NewShiftTypeHandler(shiftTypeService shifttype.ShiftTypeService) ShiftTypeHandler {
	return &ShiftTypeHandlerImpl{shiftTypeService: shiftTypeService}
}

// Create implements ShiftTypeHandler.
func (h *ShiftTypeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shifttype.SaveShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftTypeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create shift type", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift type created", resp)
}

// Get implements ShiftTypeHandler.
func (h *ShiftTypeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.shiftTypeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements ShiftTypeHandler.
func (h *ShiftTypeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftTypeService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list shift types", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements ShiftTypeHandler.
func (h *ShiftTypeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req shifttype.SaveShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftTypeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift type updated", resp)
}

// Delete implements ShiftTypeHandler.
func (h *ShiftTypeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.shiftTypeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift type deleted", nil)
}
