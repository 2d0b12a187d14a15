package models

import "time"

// RevokedToken is a denylist entry for a token that was logged out or
// rotated away before its natural expiry. Rows past ExpiresAt carry no
// information (the token would be rejected as expired anyway) and are
// garbage-collected.
type RevokedToken struct {
	JTI       string    `json:"jti"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at"`
}
