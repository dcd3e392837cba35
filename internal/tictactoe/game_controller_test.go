package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
)

const (
	e = entity.Empty
	o = entity.Human
	x = entity.Computer
)

func TestNewGame(t *testing.T) {
	// When: create a new game
	board := NewGame()

	// Then: every cell should be empty
	expectedBoard := entity.Board{
		{e, e, e},
		{e, e, e},
		{e, e, e},
	}

	require.Equal(t, expectedBoard, board)
	assert.Equal(t, entity.InProgress, Status(&board))
}

func TestPlace(t *testing.T) {
	t.Run("Place", func(t *testing.T) {
		// Given: a new game
		board := NewGame()

		// When: the human places a mark in the center
		err := Place(&board, 1, 1, entity.Human)
		require.NoError(t, err)

		// Then: only the center cell should change
		expectedBoard := entity.Board{
			{e, e, e},
			{e, o, e},
			{e, e, e},
		}

		require.Equal(t, expectedBoard, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where the computer holds the corner
		board := NewGame()
		require.NoError(t, Place(&board, 0, 0, entity.Computer))
		before := board

		// When: the human tries to place on the same cell
		err := Place(&board, 0, 0, entity.Human)

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the board remains unchanged
		require.Equal(t, before, board)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a new game
		board := NewGame()

		// When: coordinates outside the grid are passed
		errRow := Place(&board, 3, 0, entity.Human)
		errCol := Place(&board, 0, -1, entity.Human)

		// Then: an error ErrInvalidCell must be returned and nothing is placed
		assert.ErrorIs(t, errRow, apperror.ErrInvalidCell)
		assert.ErrorIs(t, errCol, apperror.ErrInvalidCell)
		assert.Equal(t, NewGame(), board)
	})

	t.Run("Human completes the top row", func(t *testing.T) {
		// Given: a new game
		board := NewGame()

		// When: the human places three marks across the top row
		require.NoError(t, Place(&board, 0, 0, entity.Human))
		assert.Equal(t, entity.InProgress, Status(&board))
		require.NoError(t, Place(&board, 0, 1, entity.Human))
		assert.Equal(t, entity.InProgress, Status(&board))
		require.NoError(t, Place(&board, 0, 2, entity.Human))

		// Then: the human wins immediately after the third placement
		assert.Equal(t, entity.HumanWins, Status(&board))
	})
}

func TestStatus(t *testing.T) {
	t.Run("Draw", func(t *testing.T) {
		// Given: a full board without three in a row
		board := entity.Board{
			{o, x, o},
			{o, x, x},
			{x, o, o},
		}

		// When: check the game status
		status := Status(&board)

		// Then: the game should be declared a draw
		assert.Equal(t, entity.Draw, status)
	})

	t.Run("Human wins on a full board", func(t *testing.T) {
		// Given: the last human move filled the board and completed a diagonal
		board := entity.Board{
			{o, x, x},
			{x, o, o},
			{o, x, o},
		}

		// When: check the game status
		status := Status(&board)

		// Then: the human wins, not a draw
		assert.Equal(t, entity.HumanWins, status)
	})

	t.Run("Computer wins by column", func(t *testing.T) {
		// Given: the computer holds the middle column
		board := entity.Board{
			{o, x, e},
			{o, x, e},
			{e, x, o},
		}

		// When: check the game status
		status := Status(&board)

		// Then: the computer should be declared the winner
		assert.Equal(t, entity.ComputerWins, status)
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a game where there is no winner yet
		board := entity.Board{
			{o, x, e},
			{e, o, e},
			{e, e, x},
		}

		// When: check the game status
		status := Status(&board)

		// Then: the game should continue
		assert.Equal(t, entity.InProgress, status)
	})
}

func TestComputerMove(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// Given: a new game
		board := NewGame()

		// When: the computer moves first
		move, err := ComputerMove(&board)
		require.NoError(t, err)

		// Then: every opening draws, so the first cell in row-major order is chosen
		assert.Equal(t, entity.Position{Row: 0, Col: 0}, move)
		assert.Equal(t, entity.Computer, board[0][0])
		assert.Equal(t, 8, len(board.EmptyCells()))
	})

	t.Run("Error on full board", func(t *testing.T) {
		// Given: a drawn board
		board := entity.Board{
			{o, x, o},
			{o, x, x},
			{x, o, o},
		}
		before := board

		// When: the computer is asked to move
		_, err := ComputerMove(&board)

		// Then: an error ErrNoLegalMove must be returned and the board stays as it was
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, before, board)
	})

	t.Run("Error on finished board", func(t *testing.T) {
		// Given: the human has already won with empty cells left
		board := entity.Board{
			{o, o, o},
			{x, x, e},
			{e, e, e},
		}
		before := board

		// When: the computer is asked to move
		_, err := ComputerMove(&board)

		// Then: an error ErrNoLegalMove must be returned and the board stays as it was
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, before, board)
	})
}

func TestResetGame(t *testing.T) {
	// Given: a board in the middle of a game
	board := entity.Board{
		{o, x, e},
		{e, o, e},
		{e, e, x},
	}

	// When: the game is reset
	ResetGame(&board)

	// Then: every cell is empty again
	assert.Equal(t, NewGame(), board)
	assert.Equal(t, entity.InProgress, Status(&board))
}
