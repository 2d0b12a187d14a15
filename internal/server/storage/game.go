package storage

import (
	"context"

	"github.com/alexdavis098/gamestore/internal/models"
)

// GameStorage defines the interface for game catalog persistence
type GameStorage interface {
	// CreateGame inserts a new game and fills in its generated ID and
	// timestamps.
	CreateGame(ctx context.Context, game *models.Game) error

	// GetGameByID retrieves a game by ID.
	// Returns ErrGameNotFound if no such game exists.
	GetGameByID(ctx context.Context, id int64) (*models.Game, error)

	// UpdateGame updates name, cost and description of an existing game.
	// Returns ErrGameNotFound if no such game exists.
	UpdateGame(ctx context.Context, game *models.Game) error

	// DeleteGame deletes a game by ID.
	// Returns ErrGameNotFound if no such game exists.
	DeleteGame(ctx context.Context, id int64) error

	// ListGames returns one page of games ordered by ID together with the
	// total number of records. page is 1-based.
	ListGames(ctx context.Context, page, perPage int) ([]*models.Game, int64, error)
}
