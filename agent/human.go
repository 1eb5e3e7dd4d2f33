package agent

import (
	"bufio"
	"connect4/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

type humanAgent struct {
	name string
	in   *bufio.Reader
	out  io.Writer
}

// NewHuman returns an agent reading columns from in, one per line. Prompts and complaints about
// invalid input go to out. Humans sharing a terminal should share one *bufio.Reader so neither
// buffers the other's lines.
func NewHuman(name string, in io.Reader, out io.Writer) Agent {
	return &humanAgent{name: name, in: bufio.NewReader(in), out: out}
}

func (a *humanAgent) Name() string {
	return a.name
}

func (a *humanAgent) GenerateMove(board game.Board, player game.Piece, saved SavedState) (game.Action, SavedState, error) {
	for {
		fmt.Fprintf(a.out, "%s, choose a column [0-%d]: ", a.name, game.Cols-1)
		line, err := a.in.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			return game.NoAction, saved, ErrInputClosed
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return game.NoAction, saved, fmt.Errorf("failed to read column: %w", err)
		}

		text := strings.TrimSpace(line)
		col, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintf(a.out, "%q is not a column number\n", text)
			continue
		}
		action := game.Action(col)
		if _, err := board.Play(action, player); err != nil {
			fmt.Fprintf(a.out, "cannot play there: %v\n", err)
			continue
		}
		return action, saved, nil
	}
}
