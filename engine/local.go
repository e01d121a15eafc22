package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"solar/experiments/metrics"
	"solar/game"
	"solar/meta"
)

type Option func(e *Engine)

func WithTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.turns = turns
		}
	}
}

func WithMaxRetries(retries int) Option {
	return func(e *Engine) {
		if retries > 0 {
			e.maxRetries = retries
		}
	}
}

// WithMetrics records a MoveMetric for every accepted move.
func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
		e.collect = true
	}
}

// Engine alternates two agents over a single game.
type Engine struct {
	Game       *game.Game
	Agents     [2]Agent
	turns      int
	maxRetries int
	metrics    metrics.Collector
	collect    bool
	moves      []metrics.MoveMetric
	played     int
	rejections int
}

func LocalEngine(g *game.Game, agents []Agent, options ...Option) *Engine {
	if g == nil {
		panic("engine needs a game")
	}
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &Engine{
		Game:       g,
		Agents:     [2]Agent{agents[0], agents[1]},
		turns:      meta.TURNS_PER_GAME,
		maxRetries: meta.MAX_RETRIES,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// MakeMove asks the player's agent for proposals until the game accepts one.
// Refused proposals leave the board untouched; after maxRetries refusals the
// game cannot continue.
func (e *Engine) MakeMove(turn int, player game.Player) (game.Move, error) {
	agent := e.Agents[player]
	e.metrics.Start(turn, player)

	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		c := agent.ProposeMove()
		e.metrics.AddAttempt()

		if !e.Game.InBounds(c) {
			return game.Move{}, fmt.Errorf("%s (%s) proposed %s: %w", player, agent.Name(), c, ErrOffBoard)
		}

		if e.Game.AttemptMove(c, player) {
			move := game.Move{Coordinates: c, Player: player, Angled: e.Game.Cell(c).IsAngled}
			round0, round1 := e.Game.CalculateScore()
			e.played++
			if e.collect {
				e.moves = append(e.moves, e.metrics.Complete(move, round0, round1))
			}
			log.Debug().Msgf("turn %d: %s (%s) toggled %s after %d attempts, round score %d-%d",
				turn, player, agent.Name(), c, attempt, round0, round1)
			return move, nil
		}

		e.rejections++
		log.Trace().Msgf("turn %d: %s (%s) may not toggle %s", turn, player, agent.Name(), c)
	}

	log.Warn().Msgf("turn %d: %s (%s) found no legal move in %d proposals", turn, player, agent.Name(), e.maxRetries)
	return game.Move{}, fmt.Errorf("%s (%s) after %d proposals: %w", player, agent.Name(), e.maxRetries, ErrRetriesExhausted)
}

// DoPly makes one move for each player, player 0 first.
func (e *Engine) DoPly(turn int) error {
	for _, player := range game.Players {
		if _, err := e.MakeMove(turn, player); err != nil {
			return err
		}
	}
	if event := log.Trace(); event.Enabled() {
		var board strings.Builder
		_ = e.Game.Draw(&board)
		event.Msgf("board after turn %d:\n%s", turn, board.String())
	}
	return nil
}

// Run plays every turn of the game.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Player0:   e.Agents[game.Player0].Name(),
		Player1:   e.Agents[game.Player1].Name(),
		StartTime: time.Now(),
	}

	log.Debug().Msgf("%s vs %s on a %dx%d board for %d turns",
		gameMetric.Player0, gameMetric.Player1, e.Game.Width(), e.Game.Height(), e.turns)

	var err error
	turn := 1
	for ; turn <= e.turns; turn++ {
		if err = e.DoPly(turn); err != nil {
			break
		}
	}

	gameMetric.Player0Score, gameMetric.Player1Score = e.Game.Scores()
	gameMetric.Player0Board, gameMetric.Player1Board = e.Game.CalculateScore()
	gameMetric.Winner = int(e.Game.Winner())
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.played
	gameMetric.Rejections = e.rejections

	if err != nil {
		return gameMetric, e.moves, fmt.Errorf("turn %d: %w", turn, err)
	}

	log.Debug().Msgf("game over: %d-%d (board %d-%d)",
		gameMetric.Player0Score, gameMetric.Player1Score, gameMetric.Player0Board, gameMetric.Player1Board)
	return gameMetric, e.moves, nil
}
