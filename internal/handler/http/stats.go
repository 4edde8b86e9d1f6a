package http

import (
	"log/slog"
	"net/http"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/stats"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	History(w http.ResponseWriter, r *http.Request)
	Week(w http.ResponseWriter, r *http.Request)
	MonthlyChart(w http.ResponseWriter, r *http.Request)
	YearlyChart(w http.ResponseWriter, r *http.Request)
	Earnings(w http.ResponseWriter, r *http.Request)
	EarningsByType(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &StatsHandlerImpl{statsService: statsService}
}

// History implements StatsHandler.
func (h *StatsHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	groups, err := h.statsService.GroupedHistory(r.Context())
	if err != nil {
		slog.Error("Failed to build grouped history", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, groups)
}

// Week implements StatsHandler.
func (h *StatsHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	week, err := h.statsService.WeekStats(r.Context())
	if err != nil {
		slog.Error("Failed to compute week stats", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// MonthlyChart implements StatsHandler.
func (h *StatsHandlerImpl) MonthlyChart(w http.ResponseWriter, r *http.Request) {
	points, err := h.statsService.MonthlyChart(r.Context())
	if err != nil {
		slog.Error("Failed to compute monthly chart", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, points)
}

// YearlyChart implements StatsHandler.
func (h *StatsHandlerImpl) YearlyChart(w http.ResponseWriter, r *http.Request) {
	points, err := h.statsService.YearlyChart(r.Context())
	if err != nil {
		slog.Error("Failed to compute yearly chart", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, points)
}

// Earnings implements StatsHandler.
func (h *StatsHandlerImpl) Earnings(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.Earnings(r.Context())
	if err != nil {
		slog.Error("Failed to compute earnings", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// EarningsByType implements StatsHandler.
func (h *StatsHandlerImpl) EarningsByType(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.statsService.EarningsByType(r.Context())
	if err != nil {
		slog.Error("Failed to compute earnings by type", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}
