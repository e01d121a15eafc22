package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"solar/algorithm"
	"solar/game"
)

func TestEmbeddedDefaults(t *testing.T) {
	cfg, err := Parse(defaultYAML)

	require.NoError(t, err, "Embedded defaults should be valid")
	require.Equal(t, 8, cfg.Game.Width)
	require.Equal(t, 3, cfg.Game.ShadeSize)
	require.Len(t, cfg.Agents, 4)
	require.Len(t, cfg.Matchups, 3)
	require.NoError(t, Default().Validate(), "Hard-coded defaults should be valid")
}

func TestLoad(t *testing.T) {
	t.Run("reading a custom path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solar.yaml")
		data := []byte(`
game:
  width: 16
  sun_angle: 2
agents:
  - id: 7
    name: sweeper
    cell_calculator: all
    cursor_initializer: origin
    move_proposer: systematic
  - id: 8
    preset: random
matchups:
  - [7, 8]
`)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 16, cfg.Game.Width)
		require.Equal(t, 8, cfg.Game.Height, "Unset values should keep their defaults")
		require.Equal(t, 2, cfg.Game.SunAngle)
		require.Equal(t, [][]int{{7, 8}}, cfg.Matchups)

		agent, ok := cfg.Agent(7)
		require.True(t, ok)
		require.Equal(t, "sweeper", agent.Label())
		params, err := agent.Parameters()
		require.NoError(t, err)
		require.Equal(t, algorithm.AlgorithmParameters{
			CellCalculator:    algorithm.AllCells,
			CursorInitializer: algorithm.OriginCursor,
			MoveProposer:      algorithm.SystematicProposer,
		}, params)
	})

	t.Run("agents without matchups pair the first two", func(t *testing.T) {
		cfg, err := Parse([]byte(`
agents:
  - id: 5
    preset: random
  - id: 3
    preset: systematic
  - id: 9
    preset: random-max-shade
`))

		require.NoError(t, err)
		require.Equal(t, [][]int{{5, 3}}, cfg.Matchups)
	})

	t.Run("a single agent without matchups fails", func(t *testing.T) {
		_, err := Parse([]byte(`
agents:
  - id: 5
    preset: random
`))

		require.Error(t, err)
	})

	t.Run("missing custom path fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game: [1, 2"), 0o644))

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty board", func(c *Config) { c.Game.Width = 0 }},
		{"missing shade size", func(c *Config) { c.Game.ShadeSize = 0 }},
		{"sun angle too high", func(c *Config) { c.Game.SunAngle = 4 }},
		{"no turns", func(c *Config) { c.Game.Turns = 0 }},
		{"no retries", func(c *Config) { c.Engine.MaxRetries = 0 }},
		{"duplicate agent", func(c *Config) { c.Agents = append(c.Agents, c.Agents[0]) }},
		{"unknown preset", func(c *Config) { c.Agents[0].Preset = "minimax" }},
		{"unknown matchup agent", func(c *Config) { c.Matchups = [][]int{{1, 99}} }},
		{"matchup of three", func(c *Config) { c.Matchups = [][]int{{1, 2, 1}} }},
		{"no matchups", func(c *Config) { c.Matchups = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			require.Error(t, cfg.Validate())
		})
	}
}

func TestGameConfigNewGame(t *testing.T) {
	t.Run("applying the sun angle", func(t *testing.T) {
		g, err := GameConfig{Width: 4, Height: 4, SunAngle: 1}.NewGame()

		require.NoError(t, err)
		require.Equal(t, 1, g.SunAngle())
	})

	t.Run("keeping the starting angle", func(t *testing.T) {
		g, err := GameConfig{Width: 4, Height: 4}.NewGame()

		require.NoError(t, err)
		require.Equal(t, 4, g.SunAngle())
	})

	t.Run("locking claimed cells", func(t *testing.T) {
		g, err := GameConfig{Width: 4, Height: 4, ClaimLock: true}.NewGame()
		require.NoError(t, err)

		require.True(t, g.AttemptMove(game.Coordinates{X: 1, Y: 1}, game.Player0))
		require.False(t, g.AttemptMove(game.Coordinates{X: 1, Y: 1}, game.Player1))
	})
}
