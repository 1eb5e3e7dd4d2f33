package experiments

import (
	"connect4/agent"
	"connect4/experiments/metrics"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: agent.KindRandom, Seed: 11},
	{ID: 2, Kind: agent.KindRandom, Seed: 22},
	{ID: 3, Kind: agent.KindMinimax, Depth: 1, Seed: 33},
}

func TestMatchUps(t *testing.T) {
	t.Run("pairs every agent once", func(t *testing.T) {
		matchUps := MatchUps(testConfigs)

		require.Len(t, matchUps, 3)
		require.Equal(t, [2]int{1, 2}, [2]int{matchUps[0][0].ID, matchUps[0][1].ID})
		require.Equal(t, [2]int{1, 3}, [2]int{matchUps[1][0].ID, matchUps[1][1].ID})
		require.Equal(t, [2]int{2, 3}, [2]int{matchUps[2][0].ID, matchUps[2][1].ID})
	})
}

func TestSchedule(t *testing.T) {
	t.Run("alternates the starting agent", func(t *testing.T) {
		fixtures := schedule(MatchUps(testConfigs[:2]), 4)

		require.Len(t, fixtures, 4)
		for i, f := range fixtures {
			require.Equal(t, i+1, f.id)
			if i%2 == 0 {
				require.Equal(t, 1, f.first.ID, "Even games should start with the first agent")
			} else {
				require.Equal(t, 2, f.first.ID, "Odd games should start with the second agent")
			}
		}
	})
}

func TestRoundRobin(t *testing.T) {
	t.Run("plays every fixture and tallies the standings", func(t *testing.T) {
		result, err := RoundRobin(context.Background(), testConfigs, 2, 2)

		require.NoError(t, err)
		require.Len(t, result.Games, 6)
		require.Len(t, result.Standings, 3)

		wins, losses, moves := 0, 0, 0
		for i, standing := range result.Standings {
			require.Equal(t, testConfigs[i].ID, standing.Agent.ID)
			require.Equal(t, 4, standing.Played(), "Every agent plays two games against each opponent")
			wins += standing.Wins
			losses += standing.Losses
		}
		require.Equal(t, wins, losses)
		for _, record := range result.Games {
			moves += record.TotalMoves
		}
		require.Len(t, result.Moves, moves, "Every move should be recorded")
	})

	t.Run("saves the records", func(t *testing.T) {
		result, err := RoundRobin(context.Background(), testConfigs[:2], 2, 1)
		require.NoError(t, err)

		dir, err := result.Save(t.TempDir(), "round_robin")

		require.NoError(t, err)
		require.FileExists(t, filepath.Join(dir, "agent_configs.csv"))
		require.FileExists(t, filepath.Join(dir, "game_records.csv"))
		require.FileExists(t, filepath.Join(dir, "move_records.csv"))
	})

	t.Run("rejects fewer than two agents", func(t *testing.T) {
		_, err := RoundRobin(context.Background(), testConfigs[:1], 2, 1)
		require.Error(t, err)
	})

	t.Run("rejects empty schedules", func(t *testing.T) {
		_, err := RoundRobin(context.Background(), testConfigs, 0, 1)
		require.Error(t, err)
	})

	t.Run("surfaces agent build errors", func(t *testing.T) {
		configs := []metrics.AgentConfig{testConfigs[0], {ID: 9, Kind: "oracle"}}

		_, err := RoundRobin(context.Background(), configs, 1, 1)

		require.ErrorIs(t, err, agent.ErrUnknownKind)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RoundRobin(ctx, testConfigs, 2, 1)

		require.ErrorIs(t, err, context.Canceled)
	})
}
