package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdavis098/gamestore/internal/models"
	"github.com/alexdavis098/gamestore/internal/server/storage"
)

func newTestGame(name string) *models.Game {
	return &models.Game{
		Name:        name,
		Cost:        59.99,
		Description: "A classic strategy board game for two players.",
	}
}

func TestGameStorage_CreateGame(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	game := newTestGame("Chess Deluxe")
	err := s.CreateGame(ctx, game)
	require.NoError(t, err)

	assert.Positive(t, game.ID)
	assert.False(t, game.CreatedAt.IsZero())
}

func TestGameStorage_CreateGame_ZeroCost(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	game := newTestGame("Free Game")
	game.Cost = 0
	require.NoError(t, s.CreateGame(ctx, game))

	got, err := s.GetGameByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Cost)
}

func TestGameStorage_GetGameByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetGameByID(ctx, 12345)
	assert.ErrorIs(t, err, storage.ErrGameNotFound)
}

func TestGameStorage_UpdateGame(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	game := newTestGame("Chess Deluxe")
	require.NoError(t, s.CreateGame(ctx, game))

	game.Name = "Chess Deluxe II"
	game.Cost = 0
	require.NoError(t, s.UpdateGame(ctx, game))

	got, err := s.GetGameByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chess Deluxe II", got.Name)
	assert.Zero(t, got.Cost)
}

func TestGameStorage_UpdateGame_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	game := newTestGame("Ghost Game")
	game.ID = 9999

	err := s.UpdateGame(ctx, game)
	assert.ErrorIs(t, err, storage.ErrGameNotFound)
}

func TestGameStorage_DeleteGame(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	game := newTestGame("Chess Deluxe")
	require.NoError(t, s.CreateGame(ctx, game))

	require.NoError(t, s.DeleteGame(ctx, game.ID))

	_, err := s.GetGameByID(ctx, game.ID)
	assert.ErrorIs(t, err, storage.ErrGameNotFound)

	// Deleting again reports not found, not a server error.
	err = s.DeleteGame(ctx, game.ID)
	assert.ErrorIs(t, err, storage.ErrGameNotFound)
}

func TestGameStorage_ListGames_Pagination(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	for i := 0; i < 20; i++ {
		require.NoError(t, s.CreateGame(ctx, newTestGame(fmt.Sprintf("Board Game %02d", i))))
	}

	first, total, err := s.ListGames(ctx, 1, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(20), total)
	require.Len(t, first, 15)

	second, total, err := s.ListGames(ctx, 2, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(20), total)
	require.Len(t, second, 5)

	// Pages are disjoint and ordered by id.
	assert.Greater(t, second[0].ID, first[len(first)-1].ID)

	empty, _, err := s.ListGames(ctx, 3, 15)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGameStorage_ListGames_ClampsPage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateGame(ctx, newTestGame("Only Game")))

	games, total, err := s.ListGames(ctx, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, games, 1)
}
