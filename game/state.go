package game

import (
	"errors"
	"fmt"

	"solar/meta"
)

// Option configures a Game at construction.
type Option func(g *Game)

// WithClaimLock locks every claimed cell to its owner: once toggled, a cell
// may only be toggled again by the player who claimed it.
func WithClaimLock() Option {
	return func(g *Game) {
		g.claimLock = true
	}
}

// WithFreshShade makes ApplyShade clear all shading before recasting it, so
// a cell whose caster was turned flat becomes lit again.
func WithFreshShade() Option {
	return func(g *Game) {
		g.freshShade = true
	}
}

// Game is the two-player state machine wrapping the board. It owns the
// cumulative score totals; shading and scoring are delegated to the pure
// board functions.
type Game struct {
	width        int
	height       int
	board        Board
	sunAngle     int
	player0Score int // Cumulative, never decreases
	player1Score int // Cumulative, never decreases
	claimLock    bool
	freshShade   bool
}

// NewGame creates a width x height game with every cell flat and claimable.
func NewGame(width, height int, options ...Option) *Game {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board dimensions must be positive, got %dx%d", width, height))
	}
	g := &Game{
		width:    width,
		height:   height,
		board:    NewBoard(width, height),
		sunAngle: meta.DEFAULT_SUN_ANGLE,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Game) String() string {
	return fmt.Sprintf("Game(%d, %d)", g.width, g.height)
}

func (g *Game) Width() int {
	return g.width
}

func (g *Game) Height() int {
	return g.height
}

// SunAngle is the number of cells to the right an angled cell shades.
func (g *Game) SunAngle() int {
	return g.sunAngle
}

// SetSunAngle changes the shadow throw. Only 1, 2 and 3 are accepted; any
// other value leaves the current angle in place.
func (g *Game) SetSunAngle(angle int) error {
	if angle < 1 || angle > 3 {
		return &InvalidConfigurationError{Setting: "sun angle", Value: angle}
	}
	g.sunAngle = angle
	return nil
}

// InBounds reports whether c addresses a cell of the board.
func (g *Game) InBounds(c Coordinates) bool {
	return g.board.InBounds(c)
}

// Cell returns a copy of the cell at c.
func (g *Game) Cell(c Coordinates) Cell {
	g.mustBeInBounds(c)
	return g.board[c.X][c.Y]
}

// Board returns a snapshot of the board. Mutating it does not affect the game.
func (g *Game) Board() Board {
	return g.board.Copy()
}

// Lock marks the cell at c as not claimable without a move being made, so
// only its current owner may toggle it. Games built WithClaimLock lock cells
// as they are claimed; Lock sets up a board where that already happened.
func (g *Game) Lock(c Coordinates) {
	g.mustBeInBounds(c)
	g.board[c.X][c.Y].Claimable = false
}

// Scores returns the cumulative totals for both players.
func (g *Game) Scores() (player0, player1 int) {
	return g.player0Score, g.player1Score
}

func (g *Game) Player0Score() int {
	return g.player0Score
}

func (g *Game) Player1Score() int {
	return g.player1Score
}

// Winner returns the player with the higher board score, NoPlayer on a draw.
// The cumulative totals do not decide the game.
func (g *Game) Winner() Player {
	player0, player1 := g.CalculateScore()
	switch {
	case player0 > player1:
		return Player0
	case player1 > player0:
		return Player1
	default:
		return NoPlayer
	}
}

// AttemptMove toggles the cell at c for player. A refused toggle leaves the
// game untouched and reports false. A successful toggle recasts shade,
// rescores the board and adds the round scores to the running totals.
// Coordinates outside the board are a caller error and panic.
func (g *Game) AttemptMove(c Coordinates, player Player) bool {
	_, err := g.Play(c, player)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			return false
		}
		panic(err)
	}
	return true
}

// Play is AttemptMove reporting the move made or the reason it was refused.
func (g *Game) Play(c Coordinates, player Player) (Move, error) {
	if !player.Valid() {
		panic(fmt.Sprintf("unknown player %d", player))
	}
	g.mustBeInBounds(c)

	cell := &g.board[c.X][c.Y]
	angled, err := cell.ToggleAngle(player)
	if err != nil {
		return Move{}, err
	}
	if g.claimLock {
		cell.Claimable = false
	}

	g.ApplyShade()
	round0, round1 := g.CalculateScore()
	g.player0Score += round0
	g.player1Score += round1

	return Move{Coordinates: c, Player: player, Angled: angled}, nil
}

// ApplyShade casts the shadow of every angled cell. Unless the game was
// created WithFreshShade, shade is never removed here: a cell once shaded
// stays shaded until ClearShade is called.
func (g *Game) ApplyShade() {
	if g.freshShade {
		ClearShade(g.board)
	}
	CastShade(g.board, g.sunAngle)
}

// ClearShade marks every cell as lit.
func (g *Game) ClearShade() {
	ClearShade(g.board)
}

// CalculateScore returns the score of the board as it stands, one point per
// lit claimed cell. It does not touch the cumulative totals.
func (g *Game) CalculateScore() (player0, player1 int) {
	return Score(g.board)
}

func (g *Game) mustBeInBounds(c Coordinates) {
	if !g.board.InBounds(c) {
		panic(fmt.Sprintf("coordinates %s outside %dx%d board", c, g.width, g.height))
	}
}
