// Package middleware contains the HTTP middleware chain: authentication,
// request logging, panic recovery, rate limiting and metrics.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexdavis098/gamestore/internal/server/handlers"
	"github.com/alexdavis098/gamestore/internal/server/jwt"
	"github.com/alexdavis098/gamestore/internal/server/storage"
)

// Auth verifies the bearer token and rejects the request with 401 before
// the endpoint handler executes. On success the verified claims are placed
// into the request context under handlers.ClaimsKey.
//
// A token is rejected when the header is missing or malformed, the
// signature or time bounds fail, or its jti is on the revocation list
// (logged out or rotated away by refresh).
func Auth(logger *slog.Logger, jwtSvc *jwt.Service, tokens storage.TokenStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				unauthorized(w, "missing token")
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				unauthorized(w, "invalid token format")
				return
			}

			claims, err := jwtSvc.Verify(parts[1])
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				unauthorized(w, "invalid token")
				return
			}

			revoked, err := tokens.IsTokenRevoked(r.Context(), claims.ID)
			if err != nil {
				logger.Error("failed to check token revocation", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if revoked {
				logger.Warn("revoked token presented", "jti", claims.ID)
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.ClaimsKey, claims)

			logger.Debug("request authenticated",
				"subject", claims.Subject,
				"jti", claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"status":"error","message":"unauthorized: ` + reason + `"}`))
}
