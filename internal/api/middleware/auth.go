package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rodrigomedeirosbrazil/cms-api/internal/api/response"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/core"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// Auth returns a middleware that validates the Bearer token in the
// Authorization header and stores its claims on the request context.
func Auth(auth *core.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.WriteError(w, http.StatusUnauthorized, "Missing authorization token.")
				return
			}

			claims, err := auth.ValidateToken(token)
			if err != nil {
				response.WriteError(w, http.StatusUnauthorized, "Invalid authorization token.")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the authenticated claims stored by Auth, or nil.
func ClaimsFrom(ctx context.Context) *core.Claims {
	claims, _ := ctx.Value(claimsKey).(*core.Claims)
	return claims
}
