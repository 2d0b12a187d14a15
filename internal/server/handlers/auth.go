package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexdavis098/gamestore/internal/auth"
	"github.com/alexdavis098/gamestore/internal/models"
	"github.com/alexdavis098/gamestore/internal/server/jwt"
	"github.com/alexdavis098/gamestore/internal/server/storage"
	"github.com/alexdavis098/gamestore/internal/validation"
	"github.com/alexdavis098/gamestore/pkg/api"
)

// Field bounds from the registration and login contracts.
const (
	minNameLen     = 4
	maxNameLen     = 80
	minPasswordLen = 8
)

// loginFailedMessage is deliberately identical for an unknown email and a
// wrong password so the response does not disclose which one it was.
const loginFailedMessage = "invalid email or password"

// AuthHandler implements register, login, logout, me and refresh.
type AuthHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
	tokens storage.TokenStorage
	jwtSvc *jwt.Service
	hasher auth.Hasher
}

// NewAuthHandler creates the auth endpoint handler.
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, tokens storage.TokenStorage, jwtSvc *jwt.Service, hasher auth.Hasher) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		users:  users,
		tokens: tokens,
		jwtSvc: jwtSvc,
		hasher: hasher,
	}
}

// Register handles POST /api/v1/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	emailTaken := func(email string) bool {
		exists, err := h.users.EmailExists(ctx, email)
		if err != nil {
			// The unique constraint still catches the duplicate on insert.
			h.logger.ErrorContext(ctx, "failed to check email uniqueness", slog.Any("error", err))
			return false
		}
		return exists
	}

	errs := validation.Check(
		validation.Field{Name: "name", Value: req.Name, Rules: []validation.Rule{
			validation.Required("name"),
			validation.String("name"),
			validation.Min("name", minNameLen),
			validation.Max("name", maxNameLen),
		}},
		validation.Field{Name: "email", Value: req.Email, Rules: []validation.Rule{
			validation.Required("email"),
			validation.Email("email"),
			validation.Unique("email", emailTaken),
		}},
		validation.Field{Name: "password", Value: req.Password, Rules: []validation.Rule{
			validation.Required("password"),
			validation.String("password"),
			validation.Min("password", minPasswordLen),
			validation.Confirmed("password", req.PasswordConfirmation),
		}},
	)
	if errs != nil {
		sendValidationErrors(w, errs)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			// Lost the race between the uniqueness rule and the insert.
			sendValidationErrors(w, map[string][]string{
				"email": {"The email has already been taken."},
			})
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, _, err := h.jwtSvc.Issue(user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("email", user.Email),
		slog.Int64("user_id", user.ID))

	sendJSON(w, api.AuthResponse{
		Status:  "success",
		Message: "User created successfully",
		User:    user,
		Authorisation: api.Authorisation{
			Token: token,
			Type:  "bearer",
		},
	}, http.StatusCreated)
}

// Login handles POST /api/v1/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	errs := validation.Check(
		validation.Field{Name: "email", Value: req.Email, Rules: []validation.Rule{
			validation.Required("email"),
			validation.Email("email"),
		}},
		validation.Field{Name: "password", Value: req.Password, Rules: []validation.Rule{
			validation.Required("password"),
			validation.String("password"),
			validation.Min("password", minPasswordLen),
		}},
	)
	if errs != nil {
		sendValidationErrors(w, errs)
		return
	}

	user, err := h.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: unknown email", slog.String("email", req.Email))
			sendError(w, loginFailedMessage, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ok, err := h.hasher.Verify(req.Password, user.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to verify password", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		h.logger.WarnContext(ctx, "login failed: wrong password", slog.Int64("user_id", user.ID))
		sendError(w, loginFailedMessage, http.StatusUnauthorized)
		return
	}

	token, _, err := h.jwtSvc.Issue(user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	sendJSON(w, api.AuthResponse{
		Status: "success",
		User:   user,
		Authorisation: api.Authorisation{
			Token: token,
			Type:  "bearer",
		},
	}, http.StatusOK)
}

// Logout handles POST /api/v1/logout. The presented token's jti goes onto
// the denylist, so the token stops working before its natural expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.revoke(r, claims); err != nil {
		h.logger.ErrorContext(ctx, "failed to revoke token", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged out", slog.String("jti", claims.ID))

	sendJSON(w, api.MessageResponse{
		Status:  "success",
		Message: "Successfully logged out",
	}, http.StatusOK)
}

// Me handles GET /api/v1/me. Refetches the full user record for the
// already-authenticated subject.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	sendJSON(w, api.UserResponse{
		Status: "success",
		User:   user,
	}, http.StatusOK)
}

// Refresh handles POST /api/v1/refresh. The presented token is rotated:
// its jti is revoked and a fresh token with a renewed expiry is issued.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.revoke(r, claims); err != nil {
		h.logger.ErrorContext(ctx, "failed to revoke token", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, _, err := h.jwtSvc.Issue(user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "token refreshed",
		slog.Int64("user_id", user.ID),
		slog.String("old_jti", claims.ID))

	sendJSON(w, api.AuthResponse{
		Status: "success",
		User:   user,
		Authorisation: api.Authorisation{
			Token: token,
			Type:  "bearer",
		},
	}, http.StatusOK)
}

// currentUser resolves the acting identity to its stored user record,
// writing the error response itself when that fails.
func (h *AuthHandler) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		sendError(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	userID, err := claims.UserID()
	if err != nil {
		h.logger.WarnContext(ctx, "invalid subject claim", slog.Any("error", err))
		sendError(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	user, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(w, "unauthorized", http.StatusUnauthorized)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	return user, true
}

// revoke puts the token's jti onto the denylist until its natural expiry.
func (h *AuthHandler) revoke(r *http.Request, claims *jwt.Claims) error {
	userID, err := claims.UserID()
	if err != nil {
		return err
	}

	return h.tokens.RevokeToken(r.Context(), &models.RevokedToken{
		JTI:       claims.ID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
		RevokedAt: time.Now().UTC(),
	})
}
