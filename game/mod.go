package game

import "errors"

const (
	Rows     = 6
	Cols     = 7
	ConnectN = 4 // pieces in a line needed to win
)

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrNoLegalMoves   = errors.New("no legal moves")
	ErrMalformedBoard = errors.New("malformed board")
	ErrFloatingPiece  = errors.New("floating piece")
)

// Piece is the content of a single cell. Player1 always moves first.
type Piece int8

const (
	Empty Piece = iota
	Player1
	Player2
)

func (p Piece) Opponent() Piece {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Empty"
	}
}

func (p Piece) valid() bool {
	return p == Player1 || p == Player2
}

// Action is the column a piece is dropped into.
type Action int

const NoAction Action = -1

type GameState int

const (
	StillPlaying GameState = iota
	Win
	Draw
)

func (s GameState) String() string {
	switch s {
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	default:
		return "StillPlaying"
	}
}

// Evaluate scores a non-terminal board from the maximizer's perspective. Positive values favor
// the maximizer.
type Evaluate func(board Board, maximizer, minimizer Piece) int
