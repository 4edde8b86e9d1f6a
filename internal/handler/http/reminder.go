package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/notification"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
)

type ReminderHandler interface {
	Due(w http.ResponseWriter, r *http.Request)
	Acknowledge(w http.ResponseWriter, r *http.Request)
}

type ReminderHandlerImpl struct {
	notificationService notification.Service
}

func NewReminderHandler(notificationService notification.Service) ReminderHandler {
	return &ReminderHandlerImpl{notificationService: notificationService}
}

// Due implements ReminderHandler. The client polls this and delivers the
// entries through the platform notification channel.
func (h *ReminderHandlerImpl) Due(w http.ResponseWriter, r *http.Request) {
	due, err := h.notificationService.DueReminders(r.Context())
	if err != nil {
		slog.Error("Failed to list due reminders", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]notification.ReminderResponse, 0, len(due))
	for _, rem := range due {
		responses = append(responses, notification.NewReminderResponse(rem))
	}

	response.Success(w, responses)
}

// Acknowledge implements ReminderHandler.
func (h *ReminderHandlerImpl) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.notificationService.Acknowledge(r.Context(), id); err != nil {
		slog.Error("Failed to acknowledge reminder", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reminder acknowledged", nil)
}
