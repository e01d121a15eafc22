package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solar/experiments"
)

var (
	flagGames  int
	flagOutput string
	flagDB     string
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Play every configured matchup and summarize the results",
	Long: `Run the configured matchups, alternating seats between games, and print
per-agent score distributions and win counts. Results are written as CSV
under the output directory and, when a database is given, stored in SQLite.

Examples:
  solar experiment --games 100
  solar experiment --config configs/offset.yaml --db ~/.solar/results.db`,
	Args: cobra.NoArgs,
	RunE: runExperiment,
}

func init() {
	experimentCmd.Flags().IntVar(&flagGames, "games", 0, "Games per matchup (0 = use config)")
	experimentCmd.Flags().StringVar(&flagOutput, "output", "", "CSV output directory (overrides config)")
	experimentCmd.Flags().StringVar(&flagDB, "db", "", "SQLite database path (overrides config)")
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagGames > 0 {
		cfg.Experiment.Games = flagGames
	}
	if flagOutput != "" {
		cfg.Experiment.OutputDir = flagOutput
	}
	if flagDB != "" {
		cfg.Experiment.Database = flagDB
	}

	result, err := experiments.Run(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, summary := range result.Summaries {
		fmt.Fprintf(out, "Matchup %d of %d (%d games)\n%s\n\n", i+1, len(result.Summaries), summary.Games, summary)
	}
	fmt.Fprintf(out, "Seed: %d\n", result.Seed)
	if result.Dir != "" {
		fmt.Fprintf(out, "CSV: %s\n", result.Dir)
	}
	if cfg.Experiment.Database != "" {
		fmt.Fprintf(out, "Experiment %s stored in %s\n", result.ID, cfg.Experiment.Database)
	}
	return nil
}
