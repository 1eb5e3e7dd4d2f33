package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type Engine interface {
	// Run plays a game to the end and returns the winner, game.Empty for a draw
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Observer is called after every move with the resulting board.
type Observer func(board game.Board, player game.Piece, action game.Action)
