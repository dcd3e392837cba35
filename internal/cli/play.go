package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/tictactoe"
)

var errBadInput = errors.New("enter a row and a column from 1 to 3, e.g. \"2 3\"")

var (
	humanColor    = color.New(color.FgHiWhite, color.Bold)
	computerColor = color.New(color.FgHiBlack, color.Bold)
	resultColor   = color.New(color.FgYellow, color.Bold)
)

func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: heredoc.Doc(`
			Play in the terminal. You are O and always move first.

			Enter a move as "row col" with rows and columns numbered 1 to 3.
			After a game ends enter "r" to restart. Enter "q" to quit.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewSession(cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
}

// Session is a terminal turn controller. It owns one board for the whole
// run and clears it on restart.
type Session struct {
	in  *bufio.Scanner
	out io.Writer

	board entity.Board
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		in:    bufio.NewScanner(in),
		out:   out,
		board: tictactoe.NewGame(),
	}
}

// Run - reads commands until "q" or end of input.
func (that *Session) Run() error {
	that.render()

	for {
		that.prompt()

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(that.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r", "restart":
			that.restart()
			continue
		}

		if err := that.turn(line); err != nil {
			that.printf("%s\n", err)
		}
	}
}

func (that *Session) restart() {
	if !tictactoe.Status(&that.board).IsFinished() {
		that.printf("finish the game before restarting\n")
		return
	}

	tictactoe.ResetGame(&that.board)
	that.render()
}

// turn - the human move followed by the computer reply. Input errors leave
// the board unchanged.
func (that *Session) turn(line string) error {
	if tictactoe.Status(&that.board).IsFinished() {
		return apperror.ErrGameFinished
	}

	row, col, err := parseMove(line)
	if err != nil {
		return err
	}

	if err = tictactoe.Place(&that.board, row, col, entity.Human); err != nil {
		if errors.Is(err, apperror.ErrInvalidCell) {
			return errBadInput
		}
		return err
	}

	if !tictactoe.Status(&that.board).IsFinished() {
		move, err := tictactoe.ComputerMove(&that.board)
		if err != nil {
			return fmt.Errorf("computer failed to make turn: %w", err)
		}

		that.printf("Computer plays %d %d\n", move.Row+1, move.Col+1)
	}

	that.render()

	return nil
}

// parseMove - "row col" with 1-based coordinates to 0-based indices.
func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errBadInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errBadInput
	}

	return row - 1, col - 1, nil
}

func (that *Session) render() {
	for row := range that.board {
		if row > 0 {
			that.printf("---+---+---\n")
		}

		cells := make([]string, 0, entity.Size)
		for _, cell := range that.board[row] {
			cells = append(cells, " "+markString(cell)+" ")
		}
		that.printf("%s\n", strings.Join(cells, "|"))
	}

	switch tictactoe.Status(&that.board) {
	case entity.HumanWins:
		that.printf("%s\n", resultColor.Sprint("You Win!"))
	case entity.ComputerWins:
		that.printf("%s\n", resultColor.Sprint("AI Wins!"))
	case entity.Draw:
		that.printf("%s\n", resultColor.Sprint("Draw!"))
	case entity.InProgress:
	}
}

func (that *Session) prompt() {
	if tictactoe.Status(&that.board).IsFinished() {
		that.printf("r to restart, q to quit> ")
		return
	}

	that.printf("your move> ")
}

func (that *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func markString(cell entity.Cell) string {
	switch cell {
	case entity.Human:
		return humanColor.Sprint(entity.HumanMark)
	case entity.Computer:
		return computerColor.Sprint(entity.ComputerMark)
	case entity.Empty:
	}

	return " "
}
