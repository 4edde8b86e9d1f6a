package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/maboeh/shifttracker-backend-go/internal/handler/http/response"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/jwt"
)

// SessionRequired rejects requests without a valid unlock session token.
// Validation goes through the jwt service so that tokens revoked by an
// explicit lock stay dead until they expire.
func SessionRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := jwtauth.TokenFromHeader(r)
			if token == "" {
				response.Unauthorized(w, "Missing session token")
				return
			}

			if err := jwtService.ValidateSessionToken(token); err != nil {
				response.Unauthorized(w, "Invalid session token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
