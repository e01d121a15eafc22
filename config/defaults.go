package config

import (
	_ "embed"

	"solar/meta"
)

//go:embed defaults/solar.yaml
var defaultYAML []byte

// Default returns the built-in configuration used when no YAML can be read.
func Default() Config {
	return Config{
		Game: GameConfig{
			Width:     meta.GAME_WIDTH,
			Height:    meta.GAME_HEIGHT,
			ShadeSize: meta.SHADE_SIZE,
			Turns:     meta.TURNS_PER_GAME,
		},
		Engine: EngineConfig{
			MaxRetries: meta.MAX_RETRIES,
		},
		Experiment: ExperimentConfig{
			Name:      "max-shade",
			Games:     meta.GAMES_PER_MATCHUP,
			OutputDir: "experiments/results",
		},
		Agents: []AgentConfig{
			{ID: 1, Preset: "random-start-systematic-max-shade"},
			{ID: 2, Preset: "systematic-max-shade"},
		},
		Matchups: [][]int{{1, 2}},
	}
}
