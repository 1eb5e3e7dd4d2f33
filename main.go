package main

import (
	"bufio"
	"connect4/agent"
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p1 := flag.String("p1", agent.KindHuman, "Agent playing X: human, random, minimax or mcts")
	p2 := flag.String("p2", agent.KindMCTS, "Agent playing O: human, random, minimax or mcts")
	rounds := flag.Int("rounds", 1, "Games to play, swapping sides after each")
	depth := flag.Int("depth", cfg.Minimax.Depth, "Minimax search depth")
	evaluator := flag.String("evaluator", cfg.Minimax.Evaluator, "Minimax evaluation: windows or centered")
	movetime := flag.Duration("movetime", cfg.Movetime(), "MCTS search time per move")
	episodes := flag.Int("episodes", cfg.MCTS.Episodes, "MCTS iterations per move, overrides -movetime when positive")
	reuse := flag.Bool("reuse", cfg.MCTS.ReuseTree, "Keep the MCTS tree between moves")
	seed := flag.Uint64("seed", cfg.Seed, "Random seed, 0 seeds from the clock")
	experiment := flag.Bool("experiment", false, "Run a round robin between the configured agents instead of a game")
	games := flag.Int("games", cfg.Experiment.Games, "Round robin games per match up")
	workers := flag.Int("workers", cfg.Experiment.Workers, "Round robin games played at once")
	out := flag.String("out", cfg.Experiment.OutputDir, "Directory for round robin records")
	logLevel := flag.String("log", cfg.LogLevel, "Log level")
	saveConfig := flag.Bool("save-config", false, "Write the effective settings to the config file")
	flag.Parse()

	cfg.LogLevel = *logLevel
	cfg.Seed = *seed
	cfg.Minimax.Depth = *depth
	cfg.Minimax.Evaluator = *evaluator
	cfg.MCTS.MovetimeMs = int(movetime.Milliseconds())
	cfg.MCTS.Episodes = *episodes
	cfg.MCTS.ReuseTree = *reuse
	cfg.Experiment.Games = *games
	cfg.Experiment.Workers = *workers
	cfg.Experiment.OutputDir = *out
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogger(cfg.LogLevel)

	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Str("path", path).Msg("saved config")
	}

	if *experiment {
		err = runExperiment(cfg)
	} else {
		err = playGames(cfg, [2]string{*p1, *p2}, *rounds)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("stopped")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// stdin is shared by every human agent.
var stdin = bufio.NewReader(os.Stdin)

func newAgent(cfg *config.Config, id int, kind string) (agent.Agent, error) {
	if kind == agent.KindHuman {
		return agent.NewHuman(fmt.Sprintf("human#%d", id), stdin, os.Stdout), nil
	}
	return agent.Build(cfg.Agent(id, kind))
}

// playGames plays rounds games between the two agents, swapping who moves first after each.
func playGames(cfg *config.Config, kinds [2]string, rounds int) error {
	var agents [2]agent.Agent
	for i, kind := range kinds {
		a, err := newAgent(cfg, i+1, kind)
		if err != nil {
			return err
		}
		agents[i] = a
	}

	d := newDisplay(os.Stdout)
	wins := map[string]int{}
	for round := 1; round <= rounds; round++ {
		fmt.Printf("Round %d: %s (X) vs %s (O)\n", round, agents[0].Name(), agents[1].Name())
		d.show(game.NewBoard())

		e := engine.LocalEngine(agents, engine.WithObserver(func(board game.Board, player game.Piece, action game.Action) {
			fmt.Printf("%s plays column %d\n", player, action)
			d.show(board)
		}))
		winner, _, _, err := e.Run()
		if err != nil {
			return err
		}

		if winner == game.Empty {
			fmt.Println("Draw!")
		} else {
			name := agents[int(winner)-1].Name()
			wins[name]++
			fmt.Printf("%s wins!\n", name)
		}
		agents[0], agents[1] = agents[1], agents[0]
	}

	if rounds > 1 {
		for _, a := range agents {
			fmt.Printf("%s: %d wins\n", a.Name(), wins[a.Name()])
		}
	}
	return nil
}

func runExperiment(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	configs := cfg.ExperimentAgents()
	result, err := experiments.RoundRobin(ctx, configs, cfg.Experiment.Games, cfg.Experiment.Workers)
	if err != nil {
		return err
	}
	dir, err := result.Save(cfg.Experiment.OutputDir, "round_robin")
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %6s %6s %6s\n", "agent", "wins", "draws", "losses")
	for _, s := range result.Standings {
		fmt.Printf("%-12s %6d %6d %6d\n", fmt.Sprintf("%s#%d", s.Agent.Kind, s.Agent.ID), s.Wins, s.Draws, s.Losses)
	}
	fmt.Printf("records written to %s\n", dir)
	return nil
}
