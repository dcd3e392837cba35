package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
)

// NewGame - returns a board with every cell empty.
func NewGame() entity.Board {
	return entity.Board{}
}

// Place - puts mark on an empty cell. The board is left unchanged on error.
func Place(board *entity.Board, row, col int, mark entity.Cell) error {
	if err := validateMove(board, row, col); err != nil {
		return err
	}

	board.Place(row, col, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, row, col int) error {
	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if !board.IsAvailable(row, col) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Status - derives the outcome from the board. Computer win is checked
// before human win. The search scores terminal boards through it.
func Status(board *entity.Board) entity.Outcome {
	switch {
	case board.HasWin(entity.Computer):
		return entity.ComputerWins
	case board.HasWin(entity.Human):
		return entity.HumanWins
	case board.IsFull():
		return entity.Draw
	default:
		return entity.InProgress
	}
}

// ComputerMove - runs the search and places the computer's mark on the best
// cell. Calling it on a finished board is a caller bug and reports
// ErrNoLegalMove.
func ComputerMove(board *entity.Board) (entity.Position, error) {
	if Status(board).IsFinished() {
		return entity.Position{}, apperror.ErrNoLegalMove
	}

	move, ok := chooseMove(board)
	if !ok {
		return entity.Position{}, apperror.ErrNoLegalMove
	}

	board.Place(move.Row, move.Col, entity.Computer)

	return move, nil
}

func ResetGame(board *entity.Board) {
	board.Reset()
}
