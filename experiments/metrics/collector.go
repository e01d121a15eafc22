package metrics

import (
	"time"

	"solar/algorithm"
	"solar/game"
)

// AgentConfig describes one strategy taking part in an experiment.
type AgentConfig struct {
	ID         int
	Name       string
	Parameters algorithm.AlgorithmParameters
}

type MoveMetric struct {
	Turn         int
	Player       int // Seat, 0 or 1
	X            int
	Y            int
	Angled       bool
	Attempts     int // Proposals requested, including the accepted one
	Player0Round int
	Player1Round int
	Duration     time.Duration
}

type GameMetric struct {
	Player0      string // Algorithm name in seat 0
	Player1      string // Algorithm name in seat 1
	Player0Score int    // Cumulative total
	Player1Score int    // Cumulative total
	Player0Board int    // Board score at the end of the game
	Player1Board int    // Board score at the end of the game
	Winner       int    // Seat with the higher board score, -1 on a draw
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Rejections   int
}

type Collector interface {
	Start(turn int, player game.Player)
	AddAttempt()
	Complete(move game.Move, round0, round1 int) MoveMetric
}

type collector struct {
	turn      int
	player    game.Player
	attempts  int
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(turn int, player game.Player) {
	m.startTime = time.Now()
	m.turn = turn
	m.player = player
	m.attempts = 0
}

func (m *collector) AddAttempt() {
	m.attempts++
}

func (m *collector) Complete(move game.Move, round0, round1 int) MoveMetric {
	return MoveMetric{
		Turn:         m.turn,
		Player:       int(m.player),
		X:            move.X,
		Y:            move.Y,
		Angled:       move.Angled,
		Attempts:     m.attempts,
		Player0Round: round0,
		Player1Round: round1,
		Duration:     time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(turn int, player game.Player) {}
func (m *dummyCollector) AddAttempt()                         {}
func (m *dummyCollector) Complete(move game.Move, round0, round1 int) MoveMetric {
	return MoveMetric{}
}
