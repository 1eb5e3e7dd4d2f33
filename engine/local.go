package engine

import (
	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		e.observer = observer
	}
}

// Local runs a game between two in-process agents. agents[0] plays game.Player1 and moves first.
type Local struct {
	board    game.Board
	agents   [2]agent.Agent
	observer Observer
}

func LocalEngine(agents [2]agent.Agent, options ...Option) *Local {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	e := &Local{
		board:  game.NewBoard(),
		agents: agents,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns the current position.
func (e *Local) Board() game.Board {
	return e.board
}

func (e *Local) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := [2]game.Piece{game.Player1, game.Player2}
	saved := [2]agent.SavedState{}
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(game.Player1),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (X) vs %s (O)", e.agents[0].Name(), e.agents[1].Name())

	winner := game.Empty
	for step := 1; ; step++ {
		i := (step - 1) % 2
		player, current := players[i], e.agents[i]

		start := time.Now()
		action, next, err := current.GenerateMove(e.board, player, saved[i])
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s failed to move: %w", current.Name(), err)
		}
		saved[i] = next

		if err := e.board.Apply(action, player); err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s played an illegal move: %w", current.Name(), err)
		}

		moveMetric := metrics.MoveMetric{Step: step, Player: int(player), Column: int(action)}
		if reporter, ok := current.(agent.MetricsReporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		} else {
			moveMetric.Duration = time.Since(start)
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().
			Int("step", step).
			Str("agent", current.Name()).
			Int("column", int(action)).
			Dur("duration", moveMetric.Duration).
			Msg("move played")
		if e.observer != nil {
			e.observer(e.board, player, action)
		}

		state := game.CheckEndState(e.board, player)
		if state == game.StillPlaying {
			continue
		}
		if state == game.Win {
			winner = player
		}
		gameMetric.TotalMoves = step
		break
	}

	gameMetric.Winner = int(winner)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if winner == game.Empty {
		log.Info().Msgf("draw after %d moves", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("%s wins after %d moves", e.agents[int(winner)-1].Name(), gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics, nil
}
