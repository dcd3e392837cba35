package entity

import (
	"errors"
	"fmt"
)

type Outcome uint8

const (
	InProgress Outcome = iota
	HumanWins
	ComputerWins
	Draw
)

const (
	StatusInProgress   = "in_progress"
	StatusHumanWins    = "human_wins"
	StatusComputerWins = "computer_wins"
	StatusDraw         = "draw"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

func (that Outcome) String() string {
	switch that {
	case HumanWins:
		return StatusHumanWins
	case ComputerWins:
		return StatusComputerWins
	case Draw:
		return StatusDraw
	default:
		return StatusInProgress
	}
}

func (that Outcome) IsFinished() bool {
	return that != InProgress
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case StatusInProgress:
		*that = InProgress
	case StatusHumanWins:
		*that = HumanWins
	case StatusComputerWins:
		*that = ComputerWins
	case StatusDraw:
		*that = Draw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGameStatus, text)
	}

	return nil
}

// Game is one human-versus-computer session. Status is recomputed from the
// board after every move and is stored only so clients can read it.
type Game struct {
	ID           string    `json:"id"`
	Board        Board     `json:"board"`
	Status       Outcome   `json:"status"`
	ComputerMove *Position `json:"computer_move,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  Board{},
		Status: InProgress,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsFinished()
}
