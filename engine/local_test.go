package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"solar/algorithm"
	"solar/game"
)

type scriptedAgent struct {
	moves     []game.Coordinates
	proposals int
}

func (a *scriptedAgent) ProposeMove() game.Coordinates {
	c := a.moves[a.proposals%len(a.moves)]
	a.proposals++
	return c
}

func (a *scriptedAgent) Name() string {
	return "scripted"
}

func newAlgorithm(t *testing.T, preset string, seed int64) *algorithm.Algorithm {
	t.Helper()
	params, err := algorithm.Preset(preset)
	require.NoError(t, err)
	alg, err := algorithm.New(algorithm.GameParameters{Width: 8, Height: 8, ShadeSize: 3}, params, algorithm.WithSeed(seed))
	require.NoError(t, err)
	return alg
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.NewGame(8, 8), []Agent{&scriptedAgent{}})
		})
	})

	t.Run("panics without a game", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(nil, []Agent{&scriptedAgent{}, &scriptedAgent{}})
		})
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("playing every turn", func(t *testing.T) {
		agents := []Agent{
			newAlgorithm(t, "random-start-systematic-max-shade", 1),
			newAlgorithm(t, "systematic-max-shade", 2),
		}
		e := LocalEngine(game.NewGame(8, 8), agents, WithTurns(4), WithMetrics())

		gameMetric, moves, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 8, gameMetric.TotalMoves, "Each turn is one move per player")
		require.Len(t, moves, 8)
		require.Equal(t, "max-shade/random/systematic", gameMetric.Player0)
		require.Equal(t, "max-shade/origin/systematic", gameMetric.Player1)
		for i, move := range moves {
			require.Equal(t, i/2+1, move.Turn)
			require.Equal(t, i%2, move.Player, "Player 0 should move first in every turn")
		}

		p0, p1 := e.Game.Scores()
		require.Equal(t, p0, gameMetric.Player0Score)
		require.Equal(t, p1, gameMetric.Player1Score)
		require.Equal(t, int(e.Game.Winner()), gameMetric.Winner)
	})

	t.Run("cumulative totals are the sum of round scores", func(t *testing.T) {
		agents := []Agent{newAlgorithm(t, "random", 5), newAlgorithm(t, "random", 6)}
		e := LocalEngine(game.NewGame(8, 8), agents, WithTurns(10), WithMetrics())

		gameMetric, moves, err := e.Run()

		require.NoError(t, err)
		sum0, sum1 := 0, 0
		for _, move := range moves {
			sum0 += move.Player0Round
			sum1 += move.Player1Round
		}
		require.Equal(t, sum0, gameMetric.Player0Score)
		require.Equal(t, sum1, gameMetric.Player1Score)
	})

	t.Run("final board decides the winner", func(t *testing.T) {
		player0 := &scriptedAgent{moves: []game.Coordinates{{X: 7, Y: 1}, {X: 7, Y: 1}, {X: 7, Y: 1}, {X: 5, Y: 0}, {X: 5, Y: 1}}}
		player1 := &scriptedAgent{moves: []game.Coordinates{{X: 7, Y: 0}, {X: 6, Y: 1}, {X: 6, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 0}}}
		e := LocalEngine(game.NewGame(8, 2), []Agent{player0, player1}, WithTurns(5))

		gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 9, gameMetric.Player0Score)
		require.Equal(t, 10, gameMetric.Player1Score, "Player 1 should lead on cumulative totals")
		require.Equal(t, 2, gameMetric.Player0Board)
		require.Equal(t, 0, gameMetric.Player1Board, "Player 0 should shade every cell of player 1")
		require.Equal(t, int(game.Player0), gameMetric.Winner)
	})

	t.Run("same seeds replay the same game", func(t *testing.T) {
		play := func() ([]game.Coordinates, int, int) {
			agents := []Agent{newAlgorithm(t, "random-start-random-offset-max-shade", 42), newAlgorithm(t, "random", 43)}
			e := LocalEngine(game.NewGame(8, 8), agents, WithTurns(8), WithMetrics())
			gameMetric, moves, err := e.Run()
			require.NoError(t, err)
			played := []game.Coordinates{}
			for _, move := range moves {
				played = append(played, game.Coordinates{X: move.X, Y: move.Y})
			}
			return played, gameMetric.Player0Score, gameMetric.Player1Score
		}

		moves1, p0a, p1a := play()
		moves2, p0b, p1b := play()

		require.Equal(t, moves1, moves2)
		require.Equal(t, p0a, p0b)
		require.Equal(t, p1a, p1b)
	})

	t.Run("stopping when an agent runs out of retries", func(t *testing.T) {
		g := game.NewGame(4, 4)
		g.Lock(game.Coordinates{X: 0, Y: 0})
		stuck := &scriptedAgent{moves: []game.Coordinates{{X: 0, Y: 0}}}
		e := LocalEngine(g, []Agent{stuck, &scriptedAgent{moves: []game.Coordinates{{X: 1, Y: 1}}}},
			WithTurns(3), WithMaxRetries(5))

		gameMetric, _, err := e.Run()

		require.ErrorIs(t, err, ErrRetriesExhausted)
		require.Equal(t, 5, stuck.proposals, "Agent should be asked exactly maxRetries times")
		require.Equal(t, 5, gameMetric.Rejections)
		require.Zero(t, gameMetric.TotalMoves)
	})
}

func TestEngineMakeMove(t *testing.T) {
	t.Run("retrying refused proposals", func(t *testing.T) {
		g := game.NewGame(4, 4, game.WithClaimLock())
		first := &scriptedAgent{moves: []game.Coordinates{{X: 0, Y: 0}}}
		second := &scriptedAgent{moves: []game.Coordinates{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 1}}}
		e := LocalEngine(g, []Agent{first, second}, WithMetrics())

		_, err := e.MakeMove(1, game.Player0)
		require.NoError(t, err)
		before := g.Board()
		move, err := e.MakeMove(1, game.Player1)

		require.NoError(t, err)
		require.Equal(t, game.Coordinates{X: 2, Y: 1}, move.Coordinates)
		require.True(t, move.Angled)
		require.Equal(t, 3, second.proposals)
		require.Equal(t, 3, e.moves[1].Attempts, "Attempts should include refused proposals")
		require.Equal(t, game.Player0, g.Cell(game.Coordinates{X: 0, Y: 0}).ClaimedBy, "Refusals should not change the cell")
		require.Equal(t, before[0][0], g.Board()[0][0])
	})

	t.Run("rejecting proposals off the board", func(t *testing.T) {
		e := LocalEngine(game.NewGame(4, 4), []Agent{
			&scriptedAgent{moves: []game.Coordinates{{X: 4, Y: 0}}},
			&scriptedAgent{moves: []game.Coordinates{{X: 0, Y: 0}}},
		})

		_, err := e.MakeMove(1, game.Player0)

		require.ErrorIs(t, err, ErrOffBoard)
	})
}
