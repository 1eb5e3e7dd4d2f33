package experiments

import (
	"connect4/agent"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Standing struct {
	Agent  metrics.AgentConfig
	Wins   int
	Draws  int
	Losses int
}

func (s Standing) Played() int {
	return s.Wins + s.Draws + s.Losses
}

type Result struct {
	Configs   []metrics.AgentConfig
	Standings []Standing // Same order as Configs
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
}

// fixture is one scheduled game. first plays game.Player1.
type fixture struct {
	id            int
	first, second metrics.AgentConfig
}

// MatchUps pairs every agent with every other agent once.
func MatchUps(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	var matchUps [][2]metrics.AgentConfig
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

// schedule plays each match up games times, swapping who moves first every game.
func schedule(matchUps [][2]metrics.AgentConfig, games int) []fixture {
	fixtures := make([]fixture, 0, len(matchUps)*games)
	for _, matchUp := range matchUps {
		for i := 0; i < games; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}
			fixtures = append(fixtures, fixture{id: len(fixtures) + 1, first: first, second: second})
		}
	}
	return fixtures
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveMetric
}

// RoundRobin plays every pair of agents against each other with at most workers games running at
// once. Each game builds fresh agents.
func RoundRobin(ctx context.Context, configs []metrics.AgentConfig, games, workers int) (*Result, error) {
	if len(configs) < 2 {
		return nil, fmt.Errorf("need at least two agents, got %d", len(configs))
	}
	if games <= 0 || workers <= 0 {
		return nil, fmt.Errorf("games and workers must be positive, got %d and %d", games, workers)
	}

	fixtures := schedule(MatchUps(configs), games)
	outcomes := make([]outcome, len(fixtures))
	log.Info().Msgf("starting round robin of %d games between %d agents...", len(fixtures), len(configs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range fixtures {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := play(f)
			if err != nil {
				return fmt.Errorf("game %d: %w", f.id, err)
			}
			outcomes[i] = o
			log.Info().Msgf("completed game %d of %d (agent %d vs agent %d) with winner: %s",
				f.id, len(fixtures), f.first.ID, f.second.ID, game.Piece(o.game.Winner))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Configs: configs}
	for _, o := range outcomes {
		result.Games = append(result.Games, o.game)
		for _, mm := range o.moves {
			result.Moves = append(result.Moves, metrics.MoveRecord{Game: o.game.ID, MoveMetric: mm})
		}
	}
	result.Standings = tally(configs, result.Games)
	log.Info().Msg("completed round robin")
	return result, nil
}

func play(f fixture) (outcome, error) {
	first, err := agent.Build(reseed(f.first, f.id))
	if err != nil {
		return outcome{}, err
	}
	second, err := agent.Build(reseed(f.second, f.id))
	if err != nil {
		return outcome{}, err
	}

	_, gameMetric, moveMetrics, err := engine.LocalEngine([2]agent.Agent{first, second}).Run()
	if err != nil {
		return outcome{}, err
	}
	return outcome{
		game: metrics.GameRecord{
			ID:         f.id,
			Agent1:     f.first.ID,
			Agent2:     f.second.ID,
			GameMetric: gameMetric,
		},
		moves: moveMetrics,
	}, nil
}

// reseed gives every game of a seeded agent its own reproducible stream.
func reseed(config metrics.AgentConfig, gameID int) metrics.AgentConfig {
	if config.Seed != 0 {
		config.Seed += uint64(gameID)
	}
	return config
}

func tally(configs []metrics.AgentConfig, records []metrics.GameRecord) []Standing {
	standings := make([]Standing, len(configs))
	index := make(map[int]int, len(configs))
	for i, config := range configs {
		standings[i].Agent = config
		index[config.ID] = i
	}

	for _, record := range records {
		first, second := &standings[index[record.Agent1]], &standings[index[record.Agent2]]
		switch game.Piece(record.Winner) {
		case game.Player1:
			first.Wins++
			second.Losses++
		case game.Player2:
			first.Losses++
			second.Wins++
		default:
			first.Draws++
			second.Draws++
		}
	}
	return standings
}

// Save writes the experiment's configs and records under root/name and returns the directory.
func (r *Result) Save(root, name string) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(r.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(r.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(r.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
