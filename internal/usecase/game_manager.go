package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/pkg"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, update func(game *entity.Game) error) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager is the turn controller for stored games: the human always
// moves first and every accepted human move is answered by the computer.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	generateID func() (string, error)
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,

		generateID: pkg.GenerateGameID,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	gameID, err := that.generateID()
	if err != nil {
		return nil, fmt.Errorf("failed generate game id: %w", err)
	}

	game := entity.NewGame(gameID)
	game.Board = tictactoe.NewGame()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "gameID", gameID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - places the human mark and, unless that ends the game, the
// computer's reply. The turn is applied as one atomic update of the stored
// game, so concurrent turns on the same game are serialized. Finished games
// are returned together with ErrGameFinished so callers can still render the
// final board.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		return playTurn(game, row, col)
	})
	if errors.Is(err, apperror.ErrGameFinished) {
		return game, err
	}

	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status)
	}

	return game, nil
}

func playTurn(game *entity.Game, row, col int) error {
	if tictactoe.Status(&game.Board).IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := tictactoe.Place(&game.Board, row, col, entity.Human); err != nil {
		return err
	}

	game.ComputerMove = nil

	if !tictactoe.Status(&game.Board).IsFinished() {
		move, err := tictactoe.ComputerMove(&game.Board)
		if err != nil {
			return fmt.Errorf("computer failed to make turn: %w", err)
		}

		game.ComputerMove = &move
	}

	game.Status = tictactoe.Status(&game.Board)

	return nil
}

// RestartGame - clears the board of an existing game.
func (that *GameManager) RestartGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		tictactoe.ResetGame(&game.Board)
		game.Status = entity.InProgress
		game.ComputerMove = nil

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Debug("game deleted", "gameID", id)

	return nil
}
