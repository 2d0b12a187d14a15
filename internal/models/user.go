package models

import "time"

// User represents a registered account.
//
// Password holds the bcrypt hash and is never serialized: every outward
// representation of a user goes through JSON, so the `-` tag is the single
// enforcement point for the "password never leaves the server" invariant.
type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"-"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
