package storage

import (
	"context"
	"time"

	"github.com/alexdavis098/gamestore/internal/models"
)

// TokenStorage defines the interface for the token revocation list.
// Logout and refresh rotation insert the presented token's jti here; the
// auth middleware consults it on every protected request.
type TokenStorage interface {
	// RevokeToken records a token as revoked until its natural expiry.
	// Revoking the same jti twice is not an error.
	RevokeToken(ctx context.Context, token *models.RevokedToken) error

	// IsTokenRevoked reports whether the given jti has been revoked.
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)

	// DeleteExpiredTokens removes denylist rows whose tokens expired
	// before now and returns the number of rows removed.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}
