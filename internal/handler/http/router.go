package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/middleware"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Shift     ShiftHandler
	ShiftType ShiftTypeHandler
	Template  TemplateHandler
	Stats     StatsHandler
	Export    ExportHandler
	Reminder  ReminderHandler
	Auth      AuthHandler
	Settings  SettingsHandler
}

func NewRouter(jwtService jwt.Service, settingsRepo settings.SettingsRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shifttracker"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Reachable while the app is locked
		r.Route("/auth", func(r chi.Router) {
			r.Post("/pin", h.Auth.SetupPIN)
			r.Post("/unlock", h.Auth.Unlock)
			r.Get("/status", h.Auth.Status)
		})

		// Everything else sits behind the app lock
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.LockGate(settingsRepo, jwtService))

			r.Post("/auth/lock", h.Auth.Lock)
			r.Delete("/auth/pin", h.Auth.DisableLock)

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/clock-in", h.Shift.ClockIn)
				r.Post("/clock-out", h.Shift.ClockOut)
				r.Get("/active", h.Shift.GetActive)
				r.Post("/breaks/start", h.Shift.StartBreak)
				r.Post("/breaks/end", h.Shift.EndBreak)

				r.Get("/", h.Shift.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Shift.Get)
					r.Put("/", h.Shift.Update)
					r.Delete("/", h.Shift.Delete)
				})
			})

			r.Route("/breaks/{id}", func(r chi.Router) {
				r.Put("/", h.Shift.UpdateBreak)
				r.Delete("/", h.Shift.DeleteBreak)
			})

			r.Route("/shift-types", func(r chi.Router) {
				r.Get("/", h.ShiftType.List)
				r.Post("/", h.ShiftType.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.ShiftType.Get)
					r.Put("/", h.ShiftType.Update)
					r.Delete("/", h.ShiftType.Delete)
				})
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", h.Template.List)
				r.Post("/", h.Template.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Template.Get)
					r.Put("/", h.Template.Update)
					r.Delete("/", h.Template.Delete)
					r.Post("/instantiate", h.Template.Instantiate)
				})
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/history", h.Stats.History)
				r.Get("/week", h.Stats.Week)
				r.Get("/charts/monthly", h.Stats.MonthlyChart)
				r.Get("/charts/yearly", h.Stats.YearlyChart)
				r.Get("/earnings", h.Stats.Earnings)
				r.Get("/earnings/by-type", h.Stats.EarningsByType)
			})

			r.Route("/exports", func(r chi.Router) {
				r.Post("/", h.Export.Create)
				r.Get("/", h.Export.History)
				r.Get("/{file}", h.Export.Download)
				r.Post("/{file}/decrypt", h.Export.Decrypt)
			})

			r.Route("/reminders", func(r chi.Router) {
				r.Get("/due", h.Reminder.Due)
				r.Delete("/{id}", h.Reminder.Acknowledge)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)
				r.Put("/", h.Settings.Update)
			})
		})
	})

	return r
}
