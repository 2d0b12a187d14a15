package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexdavis098/gamestore/internal/models"
	"github.com/alexdavis098/gamestore/internal/server/storage"
)

// CreateGame inserts a new game and fills in the generated ID and
// timestamps.
func (s *Storage) CreateGame(ctx context.Context, game *models.Game) error {
	now := time.Now().UTC()
	game.CreatedAt = now
	game.UpdatedAt = now

	query := `
		INSERT INTO games (name, cost, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		game.Name,
		game.Cost,
		game.Description,
		game.CreatedAt,
		game.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted game id: %w", err)
	}
	game.ID = id

	return nil
}

// GetGameByID retrieves a game by ID.
func (s *Storage) GetGameByID(ctx context.Context, id int64) (*models.Game, error) {
	query := `
		SELECT id, name, cost, description, created_at, updated_at
		FROM games
		WHERE id = ?
	`

	game := &models.Game{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID,
		&game.Name,
		&game.Cost,
		&game.Description,
		&game.CreatedAt,
		&game.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// UpdateGame updates name, cost and description of an existing game.
func (s *Storage) UpdateGame(ctx context.Context, game *models.Game) error {
	game.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE games
		SET name = ?, cost = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		game.Name,
		game.Cost,
		game.Description,
		game.UpdatedAt,
		game.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrGameNotFound
	}

	return nil
}

// DeleteGame deletes a game by ID.
func (s *Storage) DeleteGame(ctx context.Context, id int64) error {
	query := `DELETE FROM games WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrGameNotFound
	}

	return nil
}

// ListGames returns one page of games ordered by ID plus the total count.
func (s *Storage) ListGames(ctx context.Context, page, perPage int) ([]*models.Game, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count games: %w", err)
	}

	query := `
		SELECT id, name, cost, description, created_at, updated_at
		FROM games
		ORDER BY id
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query games: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var games []*models.Game
	for rows.Next() {
		game := &models.Game{}
		if err := rows.Scan(
			&game.ID,
			&game.Name,
			&game.Cost,
			&game.Description,
			&game.CreatedAt,
			&game.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, total, nil
}
