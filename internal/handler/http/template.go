package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/template"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
)

type TemplateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Instantiate(w http.ResponseWriter, r *http.Request)
}

type TemplateHandlerImpl struct {
	templateService template.TemplateService
}

func NewTemplateHandler(templateService template.TemplateService) TemplateHandler {
	return &TemplateHandlerImpl{templateService: templateService}
}

// Create implements TemplateHandler.
func (h *TemplateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req template.SaveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.templateService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create template", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template created", resp)
}

// Get implements TemplateHandler.
func (h *TemplateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.templateService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements TemplateHandler.
func (h *TemplateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	resp, err := h.templateService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("Failed to list templates", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements TemplateHandler.
func (h *TemplateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req template.SaveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.templateService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template updated", resp)
}

// Instantiate implements TemplateHandler. An empty body instantiates
// for today.
func (h *TemplateHandlerImpl) Instantiate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req template.InstantiateTemplateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	resp, err := h.templateService.Instantiate(r.Context(), id, req)
	if err != nil {
		slog.Error("Failed to instantiate template", "template_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created from template", resp)
}

// Delete implements TemplateHandler.
func (h *TemplateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.templateService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template deleted", nil)
}
