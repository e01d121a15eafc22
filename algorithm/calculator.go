package algorithm

import (
	"fmt"

	"golang.org/x/exp/rand"

	"solar/game"
)

type allCellCalculator struct{}

// NewAllCellCalculator lets a strategy claim every cell, row by row.
func NewAllCellCalculator() CellCalculator {
	return allCellCalculator{}
}

func (allCellCalculator) ClaimableCells(params GameParameters) []game.Coordinates {
	cells := make([]game.Coordinates, 0, params.Width*params.Height)
	for row := 0; row < params.Height; row++ {
		for col := 0; col < params.Width; col++ {
			cells = append(cells, game.Coordinates{X: col, Y: row})
		}
	}
	return cells
}

// maxShadeCellCalculator spaces claimable columns one cell further apart than
// the longest shadow, so a strategy's own cells never shade each other.
type maxShadeCellCalculator struct {
	offset int
}

// NewMaxShadeCellCalculator claims every row of the columns offset,
// offset+shade+1, offset+2(shade+1)... The offset is reduced modulo the shade
// size when cells are calculated.
func NewMaxShadeCellCalculator(offset int) CellCalculator {
	return maxShadeCellCalculator{offset: offset}
}

func (c maxShadeCellCalculator) ClaimableCells(params GameParameters) []game.Coordinates {
	columns := MaxShadeColumns(params, c.offset)
	cells := make([]game.Coordinates, 0, len(columns)*params.Height)
	for _, col := range columns {
		for row := 0; row < params.Height; row++ {
			cells = append(cells, game.Coordinates{X: col, Y: row})
		}
	}
	return cells
}

// MaxShadeColumns returns the columns a max-shade strategy claims from.
func MaxShadeColumns(params GameParameters, offset int) []int {
	start := 0
	if params.ShadeSize > 0 {
		start = ((offset % params.ShadeSize) + params.ShadeSize) % params.ShadeSize
	}
	columns := []int{}
	for col := start; col < params.Width; col += params.ShadeSize + 1 {
		columns = append(columns, col)
	}
	return columns
}

func newCellCalculator(ap AlgorithmParameters, gp GameParameters, rng *rand.Rand) (CellCalculator, error) {
	switch ap.CellCalculator {
	case AllCells:
		return NewAllCellCalculator(), nil
	case MaxShade:
		return NewMaxShadeCellCalculator(0), nil
	case OffsetMaxShade:
		return NewMaxShadeCellCalculator(ap.OffsetSeed % gp.ShadeSize), nil
	case RandomOffsetMaxShade:
		return NewMaxShadeCellCalculator((rng.Intn(1000) + 1) % gp.ShadeSize), nil
	default:
		return nil, fmt.Errorf("cell calculator %q: %w", ap.CellCalculator, ErrUnknownVariant)
	}
}
