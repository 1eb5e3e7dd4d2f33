package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"errors"
	"fmt"
	"time"
)

const (
	KindRandom  = "random"
	KindMinimax = "minimax"
	KindMCTS    = "mcts"
	KindHuman   = "human"
)

var ErrUnknownKind = errors.New("unknown agent kind")

// SavedState is opaque per-agent data returned by one move request and passed back on the next.
type SavedState any

type Agent interface {
	Name() string
	// GenerateMove returns a column for player to play on board. board is a copy owned by the
	// agent.
	GenerateMove(board game.Board, player game.Piece, saved SavedState) (game.Action, SavedState, error)
}

// MetricsReporter is implemented by agents that collect search metrics.
type MetricsReporter interface {
	LastMetric() metrics.SearchMetric
}

// Build creates a computer agent from its configuration.
func Build(config metrics.AgentConfig) (Agent, error) {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	name := fmt.Sprintf("%s#%d", config.Kind, config.ID)

	switch config.Kind {
	case KindRandom:
		return NewRandom(name, seed), nil
	case KindMinimax:
		evaluate, ok := game.Evaluators[config.Evaluator]
		if !ok && config.Evaluator != "" {
			return nil, fmt.Errorf("%w: evaluator %q", ErrUnknownKind, config.Evaluator)
		}
		collector := metrics.NewCollector()
		m := searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithEvaluationFn(evaluate),
			searcher.WithSeed(seed),
			searcher.WithMetrics(collector),
		)
		return NewMinimax(name, m, collector), nil
	case KindMCTS:
		collector := metrics.NewCollector()
		options := []searcher.Option{
			searcher.WithDuration(config.Duration),
			searcher.WithEpisodes(config.Episodes),
			searcher.WithExploration(config.Exploration),
			searcher.WithSeed(seed),
			searcher.WithMetrics(collector),
		}
		if config.ReuseTree {
			options = append(options, searcher.WithTreeReuse())
		}
		return NewMCTS(name, searcher.NewMCTS(options...), collector), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
	}
}
