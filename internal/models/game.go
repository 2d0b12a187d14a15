package models

import "time"

// Game is a catalog record. Cost is a non-negative monetary amount.
type Game struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Cost        float64   `json:"cost"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
