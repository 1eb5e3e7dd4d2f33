package engine

import (
	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted plays a fixed sequence of columns and records the saved states it receives.
type scripted struct {
	name     string
	columns  []game.Action
	received []agent.SavedState
	err      error
}

func (s *scripted) Name() string {
	return s.name
}

func (s *scripted) GenerateMove(board game.Board, player game.Piece, saved agent.SavedState) (game.Action, agent.SavedState, error) {
	s.received = append(s.received, saved)
	if s.err != nil {
		return game.NoAction, nil, s.err
	}
	action := s.columns[0]
	s.columns = s.columns[1:]
	return action, len(s.received), nil
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("first player wins with a vertical line", func(t *testing.T) {
		first := &scripted{name: "first", columns: []game.Action{0, 0, 0, 0}}
		second := &scripted{name: "second", columns: []game.Action{1, 1, 1}}
		var observed []game.Action
		e := LocalEngine([2]agent.Agent{first, second}, WithObserver(func(board game.Board, player game.Piece, action game.Action) {
			observed = append(observed, action)
		}))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Player1, winner)
		require.Equal(t, int(game.Player1), gameMetric.Winner)
		require.Equal(t, int(game.Player1), gameMetric.StartingPlayer)
		require.Equal(t, 7, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 7)
		require.Equal(t, []game.Action{0, 1, 0, 1, 0, 1, 0}, observed)
		require.True(t, game.HasConnected(e.Board(), game.Player1))
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
	})

	t.Run("moves alternate and metrics follow the players", func(t *testing.T) {
		first := &scripted{name: "first", columns: []game.Action{0, 0, 0, 0}}
		second := &scripted{name: "second", columns: []game.Action{1, 1, 1}}

		_, _, moveMetrics, err := LocalEngine([2]agent.Agent{first, second}).Run()

		require.NoError(t, err)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			want := game.Player1
			if i%2 == 1 {
				want = game.Player2
			}
			require.Equal(t, int(want), mm.Player, "Step %d should be played by %s", mm.Step, want)
		}
	})

	t.Run("saved state is handed back to the same agent", func(t *testing.T) {
		first := &scripted{name: "first", columns: []game.Action{0, 0, 0, 0}}
		second := &scripted{name: "second", columns: []game.Action{1, 1, 1}}

		_, _, _, err := LocalEngine([2]agent.Agent{first, second}).Run()

		require.NoError(t, err)
		require.Equal(t, []agent.SavedState{nil, 1, 2, 3}, first.received)
		require.Equal(t, []agent.SavedState{nil, 1, 2}, second.received)
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		drawn := []game.Action{
			4, 3, 6, 0, 1, 4, 5, 5, 1, 1, 5, 0, 1, 6, 0, 1, 5, 5, 1, 0, 4,
			6, 3, 2, 6, 6, 0, 4, 6, 5, 2, 0, 4, 2, 4, 2, 2, 2, 3, 3, 3, 3,
		}
		var columns [2][]game.Action
		for i, col := range drawn {
			columns[i%2] = append(columns[i%2], col)
		}
		first := &scripted{name: "first", columns: columns[0]}
		second := &scripted{name: "second", columns: columns[1]}

		winner, gameMetric, _, err := LocalEngine([2]agent.Agent{first, second}).Run()

		require.NoError(t, err)
		require.Equal(t, game.Empty, winner)
		require.Equal(t, 0, gameMetric.Winner)
		require.Equal(t, game.Rows*game.Cols, gameMetric.TotalMoves)
		require.Empty(t, first.columns, "Every scripted move should be played")
		require.Empty(t, second.columns, "Every scripted move should be played")
	})

	t.Run("illegal moves stop the game", func(t *testing.T) {
		first := &scripted{name: "first", columns: []game.Action{9}}
		second := &scripted{name: "second"}

		_, _, _, err := LocalEngine([2]agent.Agent{first, second}).Run()

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.ErrorContains(t, err, "first")
	})

	t.Run("agent failures stop the game", func(t *testing.T) {
		broken := errors.New("broken")
		first := &scripted{name: "first", columns: []game.Action{3}}
		second := &scripted{name: "second", err: broken}

		_, _, moveMetrics, err := LocalEngine([2]agent.Agent{first, second}).Run()

		require.ErrorIs(t, err, broken)
		require.Len(t, moveMetrics, 1)
	})

	t.Run("search agents play a full game", func(t *testing.T) {
		random := agent.NewRandom("random", 3)
		minimax, err := agent.Build(metrics.AgentConfig{ID: 1, Kind: agent.KindMinimax, Depth: 2, Seed: 3})
		require.NoError(t, err)

		winner, gameMetric, moveMetrics, err := LocalEngine([2]agent.Agent{random, minimax}).Run()

		require.NoError(t, err)
		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		require.Contains(t, []game.Piece{game.Empty, game.Player1, game.Player2}, winner)
		require.Greater(t, moveMetrics[1].Nodes, 0, "Minimax moves should carry search metrics")
	})
}
