// solar simulates the two-player solar panel board game between bot strategies.
//
// Usage:
//
//	solar play        - Play a single game and show the final board
//	solar experiment  - Play every configured matchup and summarize the results
//	solar presets     - List the strategy presets
//
// Global flags:
//
//	--config <path>     - YAML configuration (default: search ~/.solar, ./configs, built-in)
//	--seed <value>      - RNG seed for reproducible games (0 = random based on time)
//	--log-level <level> - zerolog level (default: info)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"solar/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solar",
	Short: "Simulate the solar panel board game between bot strategies",
	Long: `Two players take turns angling solar cells on a grid. An angled cell
shades the cells to its right; a claimed cell scores while it is lit.

Examples:
  solar presets
  solar play --p0 random-start-systematic-max-shade --p1 random --board
  solar experiment --games 50 --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(flagLogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML configuration")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, else time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(experimentCmd)
	rootCmd.AddCommand(presetsCmd)
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	return nil
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Experiment.Seed = flagSeed
	}
	return cfg, nil
}
