package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alexdavis098/gamestore/internal/models"
	"github.com/alexdavis098/gamestore/internal/server/storage"
	"github.com/alexdavis098/gamestore/internal/validation"
	"github.com/alexdavis098/gamestore/pkg/api"
)

// GamesPerPage is the fixed page size of the catalog listing.
const GamesPerPage = 15

// Game field bounds from the catalog contract.
const (
	minGameNameLen = 6
	maxGameNameLen = 80
	minGameDescLen = 10
	maxGameDescLen = 1000
	maxGameCost    = 100000000000
)

// GameHandler implements the game catalog CRUD endpoints. All routes are
// bearer-protected; any authenticated identity may mutate any record.
type GameHandler struct {
	logger *slog.Logger
	games  storage.GameStorage
}

// NewGameHandler creates the game endpoint handler.
func NewGameHandler(logger *slog.Logger, games storage.GameStorage) *GameHandler {
	return &GameHandler{
		logger: logger,
		games:  games,
	}
}

// List handles GET /api/v1/game. Pages are 1-based; a missing or bogus
// page parameter means page 1.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	games, total, err := h.games.ListGames(ctx, page, GamesPerPage)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list games", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if games == nil {
		games = []*models.Game{}
	}

	sendJSON(w, api.GameListResponse{
		Status:  "success",
		Data:    games,
		Page:    page,
		PerPage: GamesPerPage,
		Total:   total,
	}, http.StatusOK)
}

// Create handles POST /api/v1/game.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	game := &models.Game{
		Name:        req.Name,
		Cost:        *req.Cost,
		Description: req.Description,
	}

	if err := h.games.CreateGame(ctx, game); err != nil {
		h.logger.ErrorContext(ctx, "failed to create game", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "game created",
		slog.Int64("game_id", game.ID),
		slog.String("name", game.Name))

	sendJSON(w, api.GameResponse{
		Status: "success",
		Game:   game,
	}, http.StatusCreated)
}

// Get handles GET /api/v1/game/{id}.
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.gameID(w, r)
	if !ok {
		return
	}

	game, err := h.games.GetGameByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrGameNotFound) {
			sendError(w, "game not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get game", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, api.GameResponse{
		Status: "success",
		Game:   game,
	}, http.StatusOK)
}

// Update handles PUT /api/v1/game/{id}. Input is validated with the same
// rules as create; partial updates are not supported.
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.gameID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	game, err := h.games.GetGameByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrGameNotFound) {
			sendError(w, "game not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get game", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	game.Name = req.Name
	game.Cost = *req.Cost
	game.Description = req.Description

	if err := h.games.UpdateGame(ctx, game); err != nil {
		if errors.Is(err, storage.ErrGameNotFound) {
			sendError(w, "game not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update game", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "game updated", slog.Int64("game_id", game.ID))

	sendJSON(w, api.GameResponse{
		Status: "success",
		Game:   game,
	}, http.StatusOK)
}

// Delete handles DELETE /api/v1/game/{id}.
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.gameID(w, r)
	if !ok {
		return
	}

	if err := h.games.DeleteGame(ctx, id); err != nil {
		if errors.Is(err, storage.ErrGameNotFound) {
			sendError(w, "game not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete game", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "game deleted", slog.Int64("game_id", id))

	w.WriteHeader(http.StatusNoContent)
}

// gameID parses the {id} path parameter. A non-numeric id cannot match any
// record, so it reports not found rather than a validation failure.
func (h *GameHandler) gameID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		sendError(w, "game not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// decodeAndValidate parses the game payload and runs the catalog rule set,
// writing the error response itself when the input is rejected.
func (h *GameHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (*api.GameRequest, bool) {
	var req api.GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode game request", slog.Any("error", err))
		sendError(w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}

	errs := validation.Check(
		validation.Field{Name: "name", Value: req.Name, Rules: []validation.Rule{
			validation.Required("name"),
			validation.String("name"),
			validation.Min("name", minGameNameLen),
			validation.Max("name", maxGameNameLen),
		}},
		validation.Field{Name: "cost", Value: req.Cost, Rules: []validation.Rule{
			validation.Required("cost"),
			validation.Numeric("cost"),
			validation.Min("cost", 0),
			validation.Max("cost", maxGameCost),
		}},
		validation.Field{Name: "description", Value: req.Description, Rules: []validation.Rule{
			validation.Required("description"),
			validation.String("description"),
			validation.Min("description", minGameDescLen),
			validation.Max("description", maxGameDescLen),
		}},
	)
	if errs != nil {
		sendValidationErrors(w, errs)
		return nil, false
	}

	return &req, true
}
