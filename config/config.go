package config

import (
	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "connect4/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type MinimaxConfig struct {
	Depth     int    `json:"depth"`
	Evaluator string `json:"evaluator"`
}

type MCTSConfig struct {
	MovetimeMs  int     `json:"movetime_ms"`
	Episodes    int     `json:"episodes"` // Fixed iterations per move, overrides movetime when positive
	Exploration float64 `json:"exploration"`
	ReuseTree   bool    `json:"reuse_tree"`
}

type ExperimentConfig struct {
	Agents    []string `json:"agents"` // Agent kinds taking part in the round robin
	Games     int      `json:"games"`  // Per match up
	Workers   int      `json:"workers"`
	OutputDir string   `json:"output_dir"`
}

type Config struct {
	LogLevel   string           `json:"log_level"`
	Seed       uint64           `json:"seed"` // 0 seeds from the clock
	Minimax    MinimaxConfig    `json:"minimax"`
	MCTS       MCTSConfig       `json:"mcts"`
	Experiment ExperimentConfig `json:"experiment"`
}

// InitConfig loads the user's config file if there is one, falling back to the defaults.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig()
		return &config, config.Validate()
	}
	return Load(absPath)
}

// Load reads a config file, keeping the default for every field it leaves out.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	if c.Minimax.Depth < 1 {
		return &InvalidConfig{"minimax depth must be at least 1"}
	}
	if _, ok := game.Evaluators[c.Minimax.Evaluator]; !ok {
		return &InvalidConfig{fmt.Sprintf("unknown minimax evaluator %q", c.Minimax.Evaluator)}
	}
	if c.MCTS.MovetimeMs < 0 || c.MCTS.Episodes < 0 {
		return &InvalidConfig{"mcts movetime and episodes cannot be negative"}
	}
	if c.MCTS.MovetimeMs == 0 && c.MCTS.Episodes == 0 {
		return &InvalidConfig{"mcts needs a movetime or a number of episodes"}
	}
	if c.MCTS.Exploration <= 0 {
		return &InvalidConfig{"mcts exploration must be positive"}
	}
	if c.Experiment.Games < 1 || c.Experiment.Workers < 1 {
		return &InvalidConfig{"experiment games and workers must be at least 1"}
	}
	if len(c.Experiment.Agents) < 2 {
		return &InvalidConfig{"experiment needs at least two agents"}
	}
	for _, kind := range c.Experiment.Agents {
		switch kind {
		case agent.KindRandom, agent.KindMinimax, agent.KindMCTS:
		default:
			return &InvalidConfig{fmt.Sprintf("experiment agent %q cannot play unattended", kind)}
		}
	}
	return nil
}

func (c *Config) Movetime() time.Duration {
	return time.Duration(c.MCTS.MovetimeMs) * time.Millisecond
}

// Agent configures a computer agent of the given kind from the shared settings.
func (c *Config) Agent(id int, kind string) metrics.AgentConfig {
	config := metrics.AgentConfig{ID: id, Kind: kind, Seed: c.Seed}
	switch kind {
	case agent.KindMinimax:
		config.Depth = c.Minimax.Depth
		config.Evaluator = c.Minimax.Evaluator
	case agent.KindMCTS:
		config.Duration = c.Movetime()
		config.Episodes = c.MCTS.Episodes
		config.Exploration = c.MCTS.Exploration
		config.ReuseTree = c.MCTS.ReuseTree
	}
	if config.Seed != 0 {
		config.Seed += uint64(id) // Distinct streams for agents of the same kind
	}
	return config
}

// ExperimentAgents numbers the experiment's agents from 1.
func (c *Config) ExperimentAgents() []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, len(c.Experiment.Agents))
	for i, kind := range c.Experiment.Agents {
		configs[i] = c.Agent(i+1, kind)
	}
	return configs
}

// Save writes the config to the user's config directory and returns the file path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("failed to locate config file: %w", err)
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a any, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a any) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
