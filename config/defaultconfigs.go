package config

import "connect4/agent"

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Minimax: MinimaxConfig{
			Depth:     4,
			Evaluator: "windows",
		},
		MCTS: MCTSConfig{
			MovetimeMs:  5000,
			Exploration: 1.4142135623730951,
		},
		Experiment: ExperimentConfig{
			Agents:    []string{agent.KindRandom, agent.KindMinimax, agent.KindMCTS},
			Games:     2,
			Workers:   4,
			OutputDir: "experiments",
		},
	}
}
