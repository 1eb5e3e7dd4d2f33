package game

type cell struct {
	row, col int
}

// window is a line of ConnectN cells that could complete a win.
type window [ConnectN]cell

// windows holds every horizontal, vertical and diagonal line on the board.
var windows = buildWindows()

func buildWindows() []window {
	directions := [...]cell{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	var ws []window
	for _, d := range directions {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Cols; col++ {
				endRow, endCol := row+d.row*(ConnectN-1), col+d.col*(ConnectN-1)
				if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Cols {
					continue
				}
				var w window
				for i := range w {
					w[i] = cell{row + d.row*i, col + d.col*i}
				}
				ws = append(ws, w)
			}
		}
	}
	return ws
}

// tally counts the pieces each player holds in the window.
func (w *window) tally(b *Board, first, second Piece) (int, int) {
	a, c := 0, 0
	for _, cl := range w {
		switch b[cl.row][cl.col] {
		case first:
			a++
		case second:
			c++
		}
	}
	return a, c
}

func (w *window) owned(b *Board, player Piece) bool {
	for _, cl := range w {
		if b[cl.row][cl.col] != player {
			return false
		}
	}
	return true
}

// HasConnected reports whether player holds ConnectN consecutive cells in any line.
func HasConnected(board Board, player Piece) bool {
	if !player.valid() {
		return false
	}
	for i := range windows {
		if windows[i].owned(&board, player) {
			return true
		}
	}
	return false
}

// CheckEndState classifies the board after lastMover's move. Only lastMover can have won.
func CheckEndState(board Board, lastMover Piece) GameState {
	if HasConnected(board, lastMover) {
		return Win
	}
	if board.IsFull() {
		return Draw
	}
	return StillPlaying
}
