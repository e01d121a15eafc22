package algorithm

import (
	"errors"

	"solar/game"
)

var (
	ErrNoClaimableCells = errors.New("no claimable cells")
	ErrUnknownVariant   = errors.New("unknown variant")
)

// CellCalculator decides which cells on the board a strategy may claim.
type CellCalculator interface {
	// ClaimableCells returns the ordered coordinates the strategy may target
	ClaimableCells(params GameParameters) []game.Coordinates
}

// CursorInitializer decides where in the claimable cells a strategy starts.
type CursorInitializer interface {
	InitialIndex(cells []game.Coordinates) int
}

// MoveProposer advances a cursor over the claimable cells. It does not check
// whether the cell at the new cursor is a legal move.
type MoveProposer interface {
	// ProposeMove returns the next cursor index into the claimable cells
	ProposeMove() int
}
