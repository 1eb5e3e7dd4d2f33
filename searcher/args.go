package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// Hyperparameters for search

const DefaultDepth = 4 // Minimax plies

const DefaultDuration = 5 * time.Second // MCTS budget per move

var DefaultExploration = math.Sqrt2 // UCB1 exploration constant c

// WinScore is the minimax value of a connected line, well above game.MaxHeuristic.
const WinScore = 1 << 20

// MCTS rewards from the searching player's perspective
const (
	WIN  = 1.0
	LOSS = -WIN
	DRAW = 0.0
)

type settings struct {
	depth       int
	evaluate    game.Evaluate
	duration    time.Duration
	episodes    int
	exploration float64
	reuse       bool
	seed        uint64
	metrics     metrics.Collector
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:       DefaultDepth,
		evaluate:    game.EvaluateWindows,
		duration:    DefaultDuration,
		exploration: DefaultExploration,
		seed:        uint64(time.Now().UnixNano()),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s settings) rng() *rand.Rand {
	return rand.New(rand.NewSource(s.seed))
}

// Option configures a Minimax or MCTS engine. Options that do not apply to an engine are ignored.
type Option func(s *settings)

// WithDepth sets the minimax search depth.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithEvaluationFn sets the minimax evaluation at the depth cutoff.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithDuration sets the MCTS wall-clock budget per move.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

// WithEpisodes runs a fixed number of MCTS iterations instead of a timed search.
func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

// WithExploration sets the UCB1 exploration constant. Non-positive values keep the default.
func WithExploration(c float64) Option {
	return func(s *settings) {
		if c > 0 {
			s.exploration = c
		}
	}
}

// WithTreeReuse keeps the MCTS tree between moves.
func WithTreeReuse() Option {
	return func(s *settings) {
		s.reuse = true
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}
