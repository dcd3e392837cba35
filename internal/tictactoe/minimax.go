package tictactoe

import (
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
)

const (
	scoreComputerWin = 1
	scoreHumanWin    = -1
	scoreDraw        = 0

	// below every reachable score, so the first explored move always wins the
	// initial comparison
	scoreNone = scoreHumanWin - 1
)

// chooseMove - scores every empty cell for the computer and returns the best
// one. Cells are scanned in row-major order and a later cell replaces the
// current best only on a strictly greater score, so ties go to the first
// cell found. The board is restored before returning.
func chooseMove(board *entity.Board) (entity.Position, bool) {
	bestScore := scoreNone
	var (
		best  entity.Position
		found bool
	)

	for _, cell := range board.EmptyCells() {
		board.Place(cell.Row, cell.Col, entity.Computer)
		score := value(board, false)
		board.Clear(cell.Row, cell.Col)

		if score > bestScore {
			bestScore = score
			best = cell
			found = true
		}
	}

	return best, found
}

// value - minimax over the full game tree. The computer maximizes, the
// human minimizes. Every hypothetical mark is retracted before the next
// sibling is tried.
func value(board *entity.Board, maximizing bool) int {
	if score, ok := evaluate(board); ok {
		return score
	}

	mark := entity.Human
	bestScore := scoreComputerWin + 1
	if maximizing {
		mark = entity.Computer
		bestScore = scoreNone
	}

	for _, cell := range board.EmptyCells() {
		board.Place(cell.Row, cell.Col, mark)
		score := value(board, !maximizing)
		board.Clear(cell.Row, cell.Col)

		if maximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}

// evaluate - scores a terminal board. ok is false while the game goes on.
func evaluate(board *entity.Board) (int, bool) {
	switch Status(board) {
	case entity.ComputerWins:
		return scoreComputerWin, true
	case entity.HumanWins:
		return scoreHumanWin, true
	case entity.Draw:
		return scoreDraw, true
	case entity.InProgress:
	}

	return 0, false
}
