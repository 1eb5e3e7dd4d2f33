package config

import (
	"connect4/agent"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		config := DefaultConfig()
		require.NoError(t, config.Validate())
	})

	t.Run("defaults are not shared", func(t *testing.T) {
		config := DefaultConfig()
		config.Experiment.Agents[0] = agent.KindMCTS

		require.Equal(t, agent.KindRandom, DefaultConfig().Experiment.Agents[0])
	})
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeFile(t, `{"log_level": "debug", "minimax": {"depth": 6}, "mcts": {"reuse_tree": true}}`)

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", config.LogLevel)
		require.Equal(t, 6, config.Minimax.Depth)
		require.Equal(t, "windows", config.Minimax.Evaluator, "Missing fields should keep defaults")
		require.True(t, config.MCTS.ReuseTree)
		require.Equal(t, 5*time.Second, config.Movetime())
	})

	t.Run("missing file gives the defaults", func(t *testing.T) {
		config, err := Load(filepath.Join(t.TempDir(), "missing.json"))

		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), *config)
	})

	t.Run("malformed json is invalid", func(t *testing.T) {
		var invalid *InvalidConfig

		_, err := Load(writeFile(t, `{"minimax": `))

		require.ErrorAs(t, err, &invalid)
	})

	t.Run("out of range values are invalid", func(t *testing.T) {
		var invalid *InvalidConfig

		_, err := Load(writeFile(t, `{"minimax": {"depth": 0}}`))

		require.ErrorAs(t, err, &invalid)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"unknown log level":       func(c *Config) { c.LogLevel = "loud" },
		"unknown evaluator":       func(c *Config) { c.Minimax.Evaluator = "vibes" },
		"negative movetime":       func(c *Config) { c.MCTS.MovetimeMs = -1 },
		"no mcts budget":          func(c *Config) { c.MCTS.MovetimeMs = 0 },
		"zero exploration":        func(c *Config) { c.MCTS.Exploration = 0 },
		"no games":                func(c *Config) { c.Experiment.Games = 0 },
		"no workers":              func(c *Config) { c.Experiment.Workers = 0 },
		"single agent":            func(c *Config) { c.Experiment.Agents = []string{agent.KindMCTS} },
		"human in the experiment": func(c *Config) { c.Experiment.Agents = []string{agent.KindMCTS, agent.KindHuman} },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig()
			modify(&config)

			var invalid *InvalidConfig
			require.ErrorAs(t, config.Validate(), &invalid)
		})
	}

	t.Run("episodes replace the movetime", func(t *testing.T) {
		config := DefaultConfig()
		config.MCTS.MovetimeMs = 0
		config.MCTS.Episodes = 1000

		require.NoError(t, config.Validate())
	})
}

func TestAgent(t *testing.T) {
	t.Run("carries the settings of its kind", func(t *testing.T) {
		config := DefaultConfig()
		config.Seed = 100
		config.MCTS.ReuseTree = true

		minimax := config.Agent(1, agent.KindMinimax)
		mcts := config.Agent(2, agent.KindMCTS)

		require.Equal(t, 4, minimax.Depth)
		require.Equal(t, "windows", minimax.Evaluator)
		require.Zero(t, minimax.Duration)
		require.Equal(t, 5*time.Second, mcts.Duration)
		require.True(t, mcts.ReuseTree)
		require.NotEqual(t, minimax.Seed, mcts.Seed, "Agents should get distinct seeds")
	})

	t.Run("numbers experiment agents from one", func(t *testing.T) {
		config := DefaultConfig()

		configs := config.ExperimentAgents()

		require.Len(t, configs, 3)
		for i, c := range configs {
			require.Equal(t, i+1, c.ID)
			require.Equal(t, config.Experiment.Agents[i], c.Kind)
			require.Zero(t, c.Seed, "Unseeded configs should seed from the clock")
		}
	})
}

func TestSaveCfgFile(t *testing.T) {
	t.Run("saved files load back", func(t *testing.T) {
		config := DefaultConfig()
		config.Minimax.Depth = 7
		path := filepath.Join(t.TempDir(), "config.json")

		require.NoError(t, saveCfgFile(path, &config, 0644))
		loaded, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, config, *loaded)
	})
}
