package middleware

import (
	"log/slog"
	"net/http"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/jwt"
)

// LockGate enforces the app lock. While the lock is disabled every
// request passes; once a PIN is set up the protected routes require the
// unlock session token.
func LockGate(settingsRepo settings.SettingsRepository, jwtService jwt.Service) func(http.Handler) http.Handler {
	sessionCheck := SessionRequired(jwtService)
	return func(next http.Handler) http.Handler {
		guarded := sessionCheck(next)
		hfn := func(w http.ResponseWriter, r *http.Request) {
			cfg, err := settingsRepo.Get(r.Context())
			if err != nil {
				slog.Error("Failed to read app lock state", "error", err)
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}

			if !cfg.AppLockEnabled {
				next.ServeHTTP(w, r)
				return
			}

			guarded.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
