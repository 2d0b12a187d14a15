package api

import "github.com/alexdavis098/gamestore/internal/models"

// GameRequest is the body of POST /api/v1/game and PUT /api/v1/game/{id}.
// Cost is a pointer so that an absent field is distinguishable from an
// explicit zero (zero is a valid cost, absent is not).
type GameRequest struct {
	Name        string   `json:"name"`
	Cost        *float64 `json:"cost"`
	Description string   `json:"description"`
}

// GameResponse wraps a single game record.
type GameResponse struct {
	Status string       `json:"status"`
	Game   *models.Game `json:"game"`
}

// GameListResponse is one page of the game catalog.
type GameListResponse struct {
	Status  string         `json:"status"`
	Data    []*models.Game `json:"data"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Total   int64          `json:"total"`
}
