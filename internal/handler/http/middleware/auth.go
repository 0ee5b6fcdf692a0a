package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/auth"
	"github.com/worksite-labs/timeclock-backend-go/internal/handler/http/response"
)

// AdminRequired gates the management endpoints. The app has a single admin
// identity, so a valid access token with the admin role is the whole check.
func AdminRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			role, ok := claims["role"].(string)
			if !ok || role != "admin" {
				response.Forbidden(w, "Admin privilege required")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
