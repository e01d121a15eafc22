package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"solar/config"
	"solar/experiments"
	"solar/render"
)

var (
	flagPlayer0 string
	flagPlayer1 string
	flagBoard   bool
	flagMoves   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game between two strategies",
	Long: `Play one game and print the final scores.

Players are the first matchup of the configuration unless --p0/--p1 name presets.

Examples:
  solar play
  solar play --p0 systematic-max-shade --p1 random --seed 7 --board --moves`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer0, "p0", "", "Preset for player 0")
	playCmd.Flags().StringVar(&flagPlayer1, "p1", "", "Preset for player 1")
	playCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board")
	playCmd.Flags().BoolVar(&flagMoves, "moves", false, "Print every move")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seat0, seat1, err := players(cfg)
	if err != nil {
		return err
	}

	seed := cfg.Experiment.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e, err := experiments.NewGame(cfg, seat0, seat1, seed)
	if err != nil {
		return err
	}
	gameMetric, moves, err := e.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagMoves {
		for _, move := range moves {
			fmt.Fprintf(out, "Turn %d Player %d Move: (%d, %d) [%d attempts] round %d-%d\n",
				move.Turn, move.Player, move.X, move.Y, move.Attempts, move.Player0Round, move.Player1Round)
		}
	}
	if flagBoard {
		fmt.Fprintln(out, render.Scoreboard(e.Game, seat0.Label(), seat1.Label()))
	}

	fmt.Fprintf(out, "Player 0 score: %d (cumulative %d)\nPlayer 1 score: %d (cumulative %d)\n",
		gameMetric.Player0Board, gameMetric.Player0Score, gameMetric.Player1Board, gameMetric.Player1Score)
	switch gameMetric.Winner {
	case 0, 1:
		fmt.Fprintf(out, "Winner: %d\n", gameMetric.Winner)
	default:
		fmt.Fprintln(out, "Winner: draw")
	}
	return nil
}

// players resolves the two seats from flags, falling back to the first matchup.
func players(cfg config.Config) (config.AgentConfig, config.AgentConfig, error) {
	var seats [2]config.AgentConfig
	if len(cfg.Matchups) > 0 {
		seats[0], _ = cfg.Agent(cfg.Matchups[0][0])
		seats[1], _ = cfg.Agent(cfg.Matchups[0][1])
	}
	for i, preset := range []string{flagPlayer0, flagPlayer1} {
		if preset != "" {
			seats[i] = config.AgentConfig{ID: i, Preset: preset}
		}
		if _, err := seats[i].Parameters(); err != nil {
			return seats[0], seats[1], fmt.Errorf("player %d: %w", i, err)
		}
	}
	return seats[0], seats[1], nil
}
