// Package config holds the simulation settings and their YAML loading.
package config

import (
	"fmt"

	"solar/algorithm"
	"solar/game"
)

// Config is the complete simulation configuration.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	Engine     EngineConfig     `yaml:"engine"`
	Experiment ExperimentConfig `yaml:"experiment"`
	Agents     []AgentConfig    `yaml:"agents"`
	Matchups   [][]int          `yaml:"matchups"`
}

// GameConfig describes the board and the rules variant.
type GameConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	ShadeSize  int  `yaml:"shade_size"`
	SunAngle   int  `yaml:"sun_angle"` // 0 keeps the game's starting angle
	Turns      int  `yaml:"turns"`
	ClaimLock  bool `yaml:"claim_lock"`
	FreshShade bool `yaml:"fresh_shade"`
}

type EngineConfig struct {
	MaxRetries int `yaml:"max_retries"`
}

// ExperimentConfig controls batch runs.
type ExperimentConfig struct {
	Name      string `yaml:"name"`
	Games     int    `yaml:"games"` // Per matchup
	Seed      int64  `yaml:"seed"`  // 0 seeds from the clock
	OutputDir string `yaml:"output_dir"`
	Database  string `yaml:"database"` // Empty disables the SQLite store
}

// AgentConfig names a strategy either by preset or by its three policies.
type AgentConfig struct {
	ID                            int    `yaml:"id"`
	Name                          string `yaml:"name"`
	Preset                        string `yaml:"preset"`
	algorithm.AlgorithmParameters `yaml:",inline"`
}

// Parameters resolves the agent's policies. An explicit preset wins over
// individually named policies.
func (a AgentConfig) Parameters() (algorithm.AlgorithmParameters, error) {
	if a.Preset != "" {
		params, err := algorithm.Preset(a.Preset)
		if err != nil {
			return params, err
		}
		params.OffsetSeed = a.OffsetSeed
		return params, nil
	}
	return a.AlgorithmParameters, a.AlgorithmParameters.Validate()
}

// Label is the agent's display name.
func (a AgentConfig) Label() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.Preset != "":
		return a.Preset
	default:
		return a.AlgorithmParameters.String()
	}
}

// GameParameters is what strategies know about the board.
func (c GameConfig) GameParameters() algorithm.GameParameters {
	return algorithm.GameParameters{Width: c.Width, Height: c.Height, ShadeSize: c.ShadeSize}
}

// NewGame builds a fresh game from the configuration.
func (c GameConfig) NewGame() (*game.Game, error) {
	options := []game.Option{}
	if c.ClaimLock {
		options = append(options, game.WithClaimLock())
	}
	if c.FreshShade {
		options = append(options, game.WithFreshShade())
	}
	g := game.NewGame(c.Width, c.Height, options...)
	if c.SunAngle != 0 {
		if err := g.SetSunAngle(c.SunAngle); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Agent looks up an agent by ID.
func (c Config) Agent(id int) (AgentConfig, bool) {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return AgentConfig{}, false
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Game.Width <= 0 || c.Game.Height <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", c.Game.Width, c.Game.Height)
	}
	if c.Game.ShadeSize < 1 {
		return fmt.Errorf("config: %w", &game.InvalidConfigurationError{Setting: "shade size", Value: c.Game.ShadeSize})
	}
	if c.Game.SunAngle < 0 || c.Game.SunAngle > 3 {
		return fmt.Errorf("config: %w", &game.InvalidConfigurationError{Setting: "sun angle", Value: c.Game.SunAngle})
	}
	if c.Game.Turns <= 0 {
		return fmt.Errorf("config: turns must be positive, got %d", c.Game.Turns)
	}
	if c.Engine.MaxRetries <= 0 {
		return fmt.Errorf("config: max retries must be positive, got %d", c.Engine.MaxRetries)
	}
	if c.Experiment.Games < 0 {
		return fmt.Errorf("config: games must not be negative, got %d", c.Experiment.Games)
	}

	seen := map[int]bool{}
	for _, agent := range c.Agents {
		if seen[agent.ID] {
			return fmt.Errorf("config: duplicate agent id %d", agent.ID)
		}
		seen[agent.ID] = true
		if _, err := agent.Parameters(); err != nil {
			return fmt.Errorf("config: agent %d: %w", agent.ID, err)
		}
	}
	if len(c.Matchups) == 0 {
		return fmt.Errorf("config: at least one matchup is required")
	}
	for i, matchup := range c.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("config: matchup %d must name two agents, got %d", i+1, len(matchup))
		}
		for _, id := range matchup {
			if !seen[id] {
				return fmt.Errorf("config: matchup %d names unknown agent %d", i+1, id)
			}
		}
	}
	return nil
}
