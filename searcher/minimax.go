package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Minimax is a depth-limited alpha-beta search with a static evaluation at the cutoff.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  metrics.Collector
}

func NewMinimax(options ...Option) *Minimax {
	s := newSettings(options)
	return &Minimax{
		depth:    s.depth,
		evaluate: s.evaluate,
		rng:      s.rng(),
		metrics:  s.metrics,
	}
}

// FindMove returns player's best column. The center column is always played on an empty board.
func (m *Minimax) FindMove(board game.Board, player game.Piece) (action game.Action, err error) {
	m.metrics.Start()
	value := 0
	defer func() {
		metric := m.metrics.Complete()
		log.Debug().
			Int("column", int(action)).
			Int("value", value).
			Int("nodes", metric.Nodes).
			Int("cutoffs", metric.Cutoffs).
			Err(err).
			Msg("minimax search complete")
	}()

	if board.IsEmpty() {
		return game.Cols / 2, nil
	}

	value, action = m.Search(board, math.MinInt32, math.MaxInt32, [2]game.Piece{player, player.Opponent()}, m.depth, true)
	if action == game.NoAction {
		return game.NoAction, fmt.Errorf("%w: position is terminal", game.ErrNoLegalMoves)
	}
	return action, nil
}

// Search returns the value of board for players[0] and the column achieving it. players[0] is
// the maximizer, players[1] the minimizer. The action is game.NoAction at terminal positions and
// at the depth cutoff.
func (m *Minimax) Search(board game.Board, alpha, beta int, players [2]game.Piece, depth int, maximizing bool) (int, game.Action) {
	m.metrics.AddNode()
	maximizer, minimizer := players[0], players[1]

	// Only the player who just moved can have won. Shallower wins score higher.
	if maximizing && game.HasConnected(board, minimizer) {
		return -(WinScore + depth), game.NoAction
	}
	if !maximizing && game.HasConnected(board, maximizer) {
		return WinScore + depth, game.NoAction
	}
	if board.IsFull() {
		return 0, game.NoAction
	}
	if depth == 0 {
		return m.evaluate(board, maximizer, minimizer), game.NoAction
	}

	actions := board.LegalActions()
	m.rng.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
	})

	player, best := minimizer, math.MaxInt32
	if maximizing {
		player, best = maximizer, math.MinInt32
	}
	bestAction := game.NoAction

	for _, action := range actions {
		child, err := board.Play(action, player)
		if err != nil {
			panic(fmt.Sprintf("legal column %d is not playable: %v", action, err))
		}
		value, _ := m.Search(child, alpha, beta, players, depth-1, !maximizing)

		// Strict comparisons: a pruned sibling can return a bound equal to best.
		if maximizing && value > best {
			best, bestAction = value, action
			alpha = max(alpha, best)
		} else if !maximizing && value < best {
			best, bestAction = value, action
			beta = min(beta, best)
		}
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best, bestAction
}
