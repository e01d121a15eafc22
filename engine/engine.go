package engine

import (
	"errors"

	"solar/experiments/metrics"
	"solar/game"
)

var (
	ErrRetriesExhausted = errors.New("retries exhausted")
	ErrOffBoard         = errors.New("proposal off the board")
)

// Agent proposes the cell a player toggles next.
type Agent interface {
	ProposeMove() game.Coordinates
	Name() string
}

type Runner interface {
	// Run plays every turn of a game and reports its metrics
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
