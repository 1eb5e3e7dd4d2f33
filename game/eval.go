package game

const centerWeight = 3

// MaxHeuristic bounds the absolute value of every evaluator in this package.
var MaxHeuristic = len(windows)*ConnectN*ConnectN + centerWeight*Rows

// Evaluators maps configuration names to evaluators.
var Evaluators = map[string]Evaluate{
	"windows":  EvaluateWindows,
	"centered": EvaluateCentered,
}

// EvaluateWindows sums the squared piece counts of every window only one player occupies, and
// returns the maximizer's potential minus the minimizer's.
func EvaluateWindows(board Board, maximizer, minimizer Piece) int {
	potential := 0
	for i := range windows {
		mine, theirs := windows[i].tally(&board, maximizer, minimizer)
		switch {
		case theirs == 0:
			potential += mine * mine
		case mine == 0:
			potential -= theirs * theirs
		}
	}
	return potential
}

// EvaluateCentered adds a bonus for pieces in the center column to EvaluateWindows.
func EvaluateCentered(board Board, maximizer, minimizer Piece) int {
	center := Cols / 2
	bonus := 0
	for row := 0; row < Rows; row++ {
		switch board[row][center] {
		case maximizer:
			bonus += centerWeight
		case minimizer:
			bonus -= centerWeight
		}
	}
	return EvaluateWindows(board, maximizer, minimizer) + bonus
}
