package game

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	border = "| " + strings.Repeat("=", 2*Cols-1) + " |"
	footer = buildFooter()
)

func buildFooter() string {
	labels := make([]string, Cols)
	for col := range labels {
		labels[col] = strconv.Itoa(col % 10)
	}
	return "| " + strings.Join(labels, " ") + " |"
}

func (p Piece) symbol() byte {
	switch p {
	case Player1:
		return 'X'
	case Player2:
		return 'O'
	default:
		return '.'
	}
}

func pieceFromSymbol(symbol string) (Piece, bool) {
	switch symbol {
	case ".":
		return Empty, true
	case "X":
		return Player1, true
	case "O":
		return Player2, true
	default:
		return Empty, false
	}
}

// String renders the board framed by borders with the column indices underneath.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteByte('\n')
	for row := range b {
		sb.WriteString("| ")
		for col, cell := range b[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cell.symbol())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(border)
	sb.WriteByte('\n')
	sb.WriteString(footer)
	sb.WriteByte('\n')
	return sb.String()
}

// FromText parses the output of Board.String. Trailing whitespace on each line is ignored.
func FromText(text string) (Board, error) {
	var b Board
	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	if len(lines) != Rows+3 {
		return Board{}, fmt.Errorf("%w: expected %d lines, got %d", ErrMalformedBoard, Rows+3, len(lines))
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}
	if lines[0] != border || lines[Rows+1] != border {
		return Board{}, fmt.Errorf("%w: missing border", ErrMalformedBoard)
	}
	if lines[Rows+2] != footer {
		return Board{}, fmt.Errorf("%w: missing column footer", ErrMalformedBoard)
	}

	for row := 0; row < Rows; row++ {
		line := lines[row+1]
		inner, ok := strings.CutPrefix(line, "| ")
		if ok {
			inner, ok = strings.CutSuffix(inner, " |")
		}
		if !ok {
			return Board{}, fmt.Errorf("%w: row %d is not framed: %q", ErrMalformedBoard, row, line)
		}
		cells := strings.Split(inner, " ")
		if len(cells) != Cols {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, row, len(cells), Cols)
		}
		for col, symbol := range cells {
			piece, ok := pieceFromSymbol(symbol)
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown cell %q at row %d column %d", ErrMalformedBoard, symbol, row, col)
			}
			b[row][col] = piece
		}
	}

	for col := 0; col < Cols; col++ {
		for row := 0; row < Rows-1; row++ {
			if b[row][col] != Empty && b[row+1][col] == Empty {
				return Board{}, fmt.Errorf("%w: row %d column %d", ErrFloatingPiece, row, col)
			}
		}
	}
	return b, nil
}
