package main

import (
	"connect4/game"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// display prints boards with colored pieces when the output supports it.
type display struct {
	out    *termenv.Output
	pieces map[rune]string
}

func newDisplay(w io.Writer, options ...termenv.OutputOption) *display {
	out := termenv.NewOutput(w, options...)
	return &display{
		out: out,
		pieces: map[rune]string{
			'X': out.String("X").Foreground(out.Color("1")).Bold().String(),
			'O': out.String("O").Foreground(out.Color("3")).Bold().String(),
		},
	}
}

func (d *display) render(board game.Board) string {
	var sb strings.Builder
	for _, r := range board.String() {
		if piece, ok := d.pieces[r]; ok {
			sb.WriteString(piece)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (d *display) show(board game.Board) {
	fmt.Fprint(d.out, d.render(board))
}
