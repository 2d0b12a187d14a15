// Package handlers contains the HTTP endpoint implementations.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexdavis098/gamestore/internal/server/jwt"
	"github.com/alexdavis098/gamestore/pkg/api"
)

type contextKey string

// ClaimsKey is the request context key under which the auth middleware
// stores the verified token claims of the acting identity.
const ClaimsKey contextKey = "claims"

// ClaimsFromContext returns the verified claims placed into the context by
// the auth middleware. ok is false on unprotected routes.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims)
	return claims, ok
}

// sendJSON writes v as a JSON response with the given status code.
func sendJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// sendError writes the standard error envelope.
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, api.ErrorResponse{
		Status:  "error",
		Message: message,
	}, status)
}

// sendValidationErrors writes a 400 with the field -> messages structure.
func sendValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	sendJSON(w, api.ErrorResponse{
		Status:  "error",
		Message: "validation failed",
		Errors:  errs,
	}, http.StatusBadRequest)
}
