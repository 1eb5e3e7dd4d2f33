package game

import "fmt"

// Board is a Rows x Cols grid. Row 0 is the top row, pieces settle towards row Rows-1.
// Board is a value type: assignment copies it.
type Board [Rows][Cols]Piece

func NewBoard() Board {
	return Board{}
}

// Apply drops player's piece into the lowest empty cell of the column. The board is left
// unchanged when the move is rejected.
func (b *Board) Apply(action Action, player Piece) error {
	if !player.valid() {
		return fmt.Errorf("%w: unknown player %d", ErrInvalidMove, player)
	}
	if action < 0 || int(action) >= Cols {
		return fmt.Errorf("%w: column %d out of range [0, %d)", ErrInvalidMove, action, Cols)
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[row][action] == Empty {
			b[row][action] = player
			return nil
		}
	}
	return fmt.Errorf("%w: column %d is full", ErrInvalidMove, action)
}

// Play returns a copy of the board with the move applied.
func (b Board) Play(action Action, player Piece) (Board, error) {
	err := b.Apply(action, player)
	return b, err
}

// LegalActions returns the non-full columns in ascending order.
func (b *Board) LegalActions() []Action {
	return b.AppendLegalActions(make([]Action, 0, Cols))
}

// AppendLegalActions appends the non-full columns to dst.
func (b *Board) AppendLegalActions(dst []Action) []Action {
	for col := 0; col < Cols; col++ {
		if b[0][col] == Empty {
			dst = append(dst, Action(col))
		}
	}
	return dst
}

func (b *Board) ColumnFull(action Action) bool {
	return b[0][action] != Empty
}

// Height is the number of pieces in the column.
func (b *Board) Height(action Action) int {
	height := 0
	for row := Rows - 1; row >= 0 && b[row][action] != Empty; row-- {
		height++
	}
	return height
}

func (b *Board) IsFull() bool {
	for col := 0; col < Cols; col++ {
		if b[0][col] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) IsEmpty() bool {
	for col := 0; col < Cols; col++ {
		if b[Rows-1][col] != Empty {
			return false
		}
	}
	return true
}

func (b *Board) Count(player Piece) int {
	count := 0
	for row := range b {
		for _, cell := range b[row] {
			if cell == player {
				count++
			}
		}
	}
	return count
}
