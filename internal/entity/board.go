package entity

import (
	"errors"
	"fmt"
)

// Size is the number of rows and columns of the board.
const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	Human
	Computer
)

const (
	EmptyMark    = ""
	HumanMark    = "O"
	ComputerMark = "X"
)

var ErrUnknownMark = errors.New("unknown mark")

// Lines - the 8 winning triples: 3 rows, 3 columns, 2 diagonals.
var Lines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Position is a cell coordinate on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that Cell) String() string {
	switch that {
	case Human:
		return HumanMark
	case Computer:
		return ComputerMark
	default:
		return EmptyMark
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case EmptyMark:
		*that = Empty
	case HumanMark:
		*that = Human
	case ComputerMark:
		*that = Computer
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}

	return nil
}

// Board is a 3x3 grid in row-major order. It is a value type, so copying a
// Board copies all of its cells.
type Board [Size][Size]Cell

// InBounds - reports whether row and col address a cell on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (that *Board) IsAvailable(row, col int) bool {
	return that[row][col] == Empty
}

// Place - writes mark into the cell without checking what was there.
func (that *Board) Place(row, col int, mark Cell) {
	that[row][col] = mark
}

func (that *Board) Clear(row, col int) {
	that[row][col] = Empty
}

func (that *Board) Reset() {
	for row := range that {
		for col := range that[row] {
			that.Clear(row, col)
		}
	}
}

func (that *Board) IsFull() bool {
	for row := range that {
		for col := range that[row] {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// HasWin - reports whether any line is filled entirely with mark.
func (that *Board) HasWin(mark Cell) bool {
	if mark == Empty {
		return false
	}

	for _, line := range Lines {
		a, b, c := line[0], line[1], line[2]
		if that[a.Row][a.Col] == mark && that[b.Row][b.Col] == mark && that[c.Row][c.Col] == mark {
			return true
		}
	}

	return false
}

// EmptyCells - returns the empty cells in row-major order.
func (that *Board) EmptyCells() []Position {
	cells := make([]Position, 0, Size*Size)
	for row := range that {
		for col := range that[row] {
			if that[row][col] == Empty {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Count - returns the number of cells holding mark.
func (that *Board) Count(mark Cell) int {
	n := 0
	for row := range that {
		for col := range that[row] {
			if that[row][col] == mark {
				n++
			}
		}
	}

	return n
}
