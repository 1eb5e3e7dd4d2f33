package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type minimaxAgent struct {
	name      string
	minimax   *searcher.Minimax
	collector metrics.Collector
	last      metrics.SearchMetric
}

// NewMinimax wraps a minimax engine. collector must be the one the engine reports to.
func NewMinimax(name string, minimax *searcher.Minimax, collector metrics.Collector) Agent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &minimaxAgent{name: name, minimax: minimax, collector: collector}
}

func (a *minimaxAgent) Name() string {
	return a.name
}

func (a *minimaxAgent) GenerateMove(board game.Board, player game.Piece, _ SavedState) (game.Action, SavedState, error) {
	action, err := a.minimax.FindMove(board, player)
	a.last = a.collector.Complete()
	return action, nil, err
}

func (a *minimaxAgent) LastMetric() metrics.SearchMetric {
	return a.last
}

type mctsAgent struct {
	name      string
	mcts      *searcher.MCTS
	collector metrics.Collector
	last      metrics.SearchMetric
}

// NewMCTS wraps an MCTS engine. The saved state is the engine's tree when tree reuse is enabled.
func NewMCTS(name string, mcts *searcher.MCTS, collector metrics.Collector) Agent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &mctsAgent{name: name, mcts: mcts, collector: collector}
}

func (a *mctsAgent) Name() string {
	return a.name
}

func (a *mctsAgent) GenerateMove(board game.Board, player game.Piece, saved SavedState) (game.Action, SavedState, error) {
	tree, _ := saved.(*searcher.Tree)
	action, next, err := a.mcts.FindMove(board, player, tree)
	a.last = a.collector.Complete()
	if next == nil {
		return action, nil, err
	}
	return action, next, err
}

func (a *mctsAgent) LastMetric() metrics.SearchMetric {
	return a.last
}
