package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/auth"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	SetupPIN(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	DisableLock(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// SetupPIN implements AuthHandler.
func (h *AuthHandlerImpl) SetupPIN(w http.ResponseWriter, r *http.Request) {
	var req auth.SetupPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.SetupPIN(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "PIN set and app lock enabled", nil)
}

// Unlock implements AuthHandler.
func (h *AuthHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	var req auth.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Unlock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Lock implements AuthHandler. The revoked token is the one that
// authorized this request.
func (h *AuthHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)

	if err := h.authService.Lock(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session locked", nil)
}

// DisableLock implements AuthHandler.
func (h *AuthHandlerImpl) DisableLock(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.DisableLock(r.Context()); err != nil {
		slog.Error("Failed to disable app lock", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "App lock disabled", nil)
}

// Status implements AuthHandler.
func (h *AuthHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.authService.Status(r.Context())
	if err != nil {
		slog.Error("Failed to read auth status", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
