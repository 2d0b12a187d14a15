package storage

import (
	"context"

	"github.com/alexdavis098/gamestore/internal/models"
)

// UserStorage defines the interface for user persistence
type UserStorage interface {
	// CreateUser inserts a new user and fills in its generated ID and
	// timestamps. Returns ErrEmailTaken if the email is already in use.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// EmailExists reports whether a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
}
