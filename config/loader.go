package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the simulation configuration.
// Search order: customPath -> ~/.solar/config.yaml -> ./configs/solar.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "solar.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result, so
// a file only needs to name the settings it changes.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Lists replace rather than merge
	cfg.Agents = nil
	cfg.Matchups = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Agents) == 0 {
		cfg.Agents = Default().Agents
		if len(cfg.Matchups) == 0 {
			cfg.Matchups = Default().Matchups
		}
	}
	// Agents without matchups play the first two against each other
	if len(cfg.Matchups) == 0 && len(cfg.Agents) >= 2 {
		cfg.Matchups = [][]int{{cfg.Agents[0].ID, cfg.Agents[1].ID}}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".solar", filename)
}
