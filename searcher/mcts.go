package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// maxReuseDepth is how far below a saved root the next position is searched for: our move and
// the opponent's reply.
const maxReuseDepth = 2

type MCTS struct {
	duration    time.Duration
	episodes    int
	exploration float64
	reuse       bool
	rng         *rand.Rand
	metrics     metrics.Collector
}

// Tree is a search tree handed back to the caller between moves when tree reuse is enabled.
type Tree struct {
	root *node
}

func NewMCTS(options ...Option) *MCTS {
	s := newSettings(options)
	return &MCTS{
		duration:    s.duration,
		episodes:    s.episodes,
		exploration: s.exploration,
		reuse:       s.reuse,
		rng:         s.rng(),
		metrics:     s.metrics,
	}
}

// FindMove searches from board for player's next column. With tree reuse enabled the returned
// tree should be passed to the next call; it is nil otherwise.
func (m *MCTS) FindMove(board game.Board, player game.Piece, saved *Tree) (game.Action, *Tree, error) {
	m.metrics.Start()
	root := m.findRoot(saved, board, player)
	if !root.isExpandable() && root.isLeaf() {
		return game.NoAction, nil, fmt.Errorf("%w: position is terminal", game.ErrNoLegalMoves)
	}

	if m.episodes > 0 {
		m.iterate(root, player)
	} else {
		m.countdown(root, player)
	}

	action := root.findBestAction()
	metric := m.metrics.Complete()
	log.Debug().
		Int("column", int(action)).
		Int("episodes", metric.Episodes).
		Int("visits", root.visits).
		Bool("reused", metric.IsTreeReused).
		Msg("mcts search complete")

	if !m.reuse {
		return action, nil, nil
	}
	return action, &Tree{root: root}, nil
}

func (m *MCTS) iterate(root *node, player game.Piece) {
	for i := 0; i < m.episodes; i++ {
		m.simulate(root, player)
	}
}

// countdown runs iterations until the deadline passes. At least one iteration always runs.
func (m *MCTS) countdown(root *node, player game.Piece) {
	deadline := time.Now().Add(m.duration)
	for {
		m.simulate(root, player)
		if !time.Now().Before(deadline) {
			return
		}
	}
}

func (m *MCTS) simulate(root *node, player game.Piece) {
	leaf := m.selectThenExpand(root, player)
	winner := rollout(leaf, m.rng)
	backup(leaf, computeReward(winner, player))
	m.metrics.AddEpisode()
}

func (m *MCTS) selectThenExpand(root *node, player game.Piece) *node {
	n := root
	for !n.isExpandable() && !n.isLeaf() {
		n = n.selectChild(m.exploration, player)
	}
	if n.isExpandable() {
		n = n.expand(m.rng)
	}
	return n
}

func backup(n *node, reward float64) {
	for n != nil {
		n = n.backup(reward)
	}
}

// findRoot continues from the saved tree when it contains board, otherwise starts a new tree.
// The root is tagged with the opponent, who made the last move.
func (m *MCTS) findRoot(saved *Tree, board game.Board, player game.Piece) *node {
	if m.reuse && saved != nil {
		if root := traverse(saved.root, board, player.Opponent(), maxReuseDepth); root != nil {
			root.parent = nil
			m.metrics.SetTreeReused(true)
			return root
		}
	}
	m.metrics.SetTreeReused(false)
	return newNode(nil, board, player.Opponent(), game.NoAction)
}

func traverse(n *node, board game.Board, player game.Piece, depth int) *node {
	if n == nil {
		return nil
	}
	if n.board == board && n.player == player {
		return n
	}
	if depth == 0 {
		return nil
	}
	for _, child := range n.children {
		if found := traverse(child, board, player, depth-1); found != nil {
			return found
		}
	}
	return nil
}
