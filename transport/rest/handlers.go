package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
)

var errInvalidBody = errors.New("invalid request body")

type uGame interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error)
	RestartGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type turnRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type errorResponse struct {
	Error string       `json:"error"`
	Game  *entity.Game `json:"game,omitempty"`
}

type GameHandler struct {
	logger *slog.Logger
	uGame  uGame
}

func NewGameHandler(logger *slog.Logger, uGame uGame) *GameHandler {
	return &GameHandler{
		logger: logger.With("component", "game_handler"),
		uGame:  uGame,
	}
}

// Create handles POST /api/v1/games
func (that *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.NewGame(r.Context())
	if err != nil {
		that.writeError(w, nil, err)
		return
	}

	writeJSON(that.logger, w, http.StatusCreated, game)
}

// Get handles GET /api/v1/games/{id}
func (that *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, nil, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, game)
}

// Delete handles DELETE /api/v1/games/{id}
func (that *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), mux.Vars(r)["id"]); err != nil {
		that.writeError(w, nil, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Turn handles POST /api/v1/games/{id}/turn
func (that *GameHandler) Turn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeError(w, nil, errInvalidBody)
		return
	}

	game, err := that.uGame.MakeTurn(r.Context(), mux.Vars(r)["id"], *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, game, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, game)
}

// Restart handles POST /api/v1/games/{id}/restart
func (that *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.RestartGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, nil, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, game)
}

// writeError - maps domain errors to HTTP statuses. game is echoed back when
// the client needs the current board, e.g. after ErrGameFinished.
func (that *GameHandler) writeError(w http.ResponseWriter, game *entity.Game, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, apperror.ErrInvalidCell):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrConcurrentUpdate):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		writeJSON(that.logger, w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	writeJSON(that.logger, w, status, errorResponse{Error: err.Error(), Game: game})
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to write response", "status", status, "error", err)
	}
}
