// Package api defines the JSON wire contract shared by the server and its
// clients.
package api

import "github.com/alexdavis098/gamestore/internal/models"

// RegisterRequest is the body of POST /api/v1/register.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authorisation carries the bearer credential issued on login, register and
// refresh.
type Authorisation struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

// AuthResponse is returned by login, register and refresh.
type AuthResponse struct {
	Status        string        `json:"status"`
	Message       string        `json:"message,omitempty"`
	User          *models.User  `json:"user"`
	Authorisation Authorisation `json:"authorisation"`
}

// UserResponse is returned by GET /api/v1/me.
type UserResponse struct {
	Status string       `json:"status"`
	User   *models.User `json:"user"`
}

// MessageResponse is a generic success envelope (logout and friends).
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every non-2xx response. Errors is only
// populated for validation failures and maps field name to the full list of
// violated rule messages.
type ErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
