package algorithm

import (
	"fmt"

	"solar/game"
)

// GameParameters describe the board a strategy plays on.
type GameParameters struct {
	Width     int
	Height    int
	ShadeSize int // Longest shadow the strategy plans around
}

func (p GameParameters) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.ShadeSize < 1 {
		return &game.InvalidConfigurationError{Setting: "shade size", Value: p.ShadeSize}
	}
	return nil
}

type CellCalculatorKind string

const (
	AllCells             CellCalculatorKind = "all"
	MaxShade             CellCalculatorKind = "max-shade"
	OffsetMaxShade       CellCalculatorKind = "offset-max-shade"
	RandomOffsetMaxShade CellCalculatorKind = "random-offset-max-shade"
)

type CursorInitializerKind string

const (
	OriginCursor CursorInitializerKind = "origin"
	RandomCursor CursorInitializerKind = "random"
)

type MoveProposerKind string

const (
	SystematicProposer MoveProposerKind = "systematic"
	RandomProposer     MoveProposerKind = "random"
)

// AlgorithmParameters name the three policies an Algorithm is composed of.
type AlgorithmParameters struct {
	CellCalculator    CellCalculatorKind    `yaml:"cell_calculator"`
	CursorInitializer CursorInitializerKind `yaml:"cursor_initializer"`
	MoveProposer      MoveProposerKind      `yaml:"move_proposer"`
	OffsetSeed        int                   `yaml:"offset_seed"` // Only read by offset-max-shade
}

func (p AlgorithmParameters) String() string {
	return fmt.Sprintf("%s/%s/%s", p.CellCalculator, p.CursorInitializer, p.MoveProposer)
}

// Validate checks that every named variant exists.
func (p AlgorithmParameters) Validate() error {
	switch p.CellCalculator {
	case AllCells, MaxShade, OffsetMaxShade, RandomOffsetMaxShade:
	default:
		return fmt.Errorf("cell calculator %q: %w", p.CellCalculator, ErrUnknownVariant)
	}
	switch p.CursorInitializer {
	case OriginCursor, RandomCursor:
	default:
		return fmt.Errorf("cursor initializer %q: %w", p.CursorInitializer, ErrUnknownVariant)
	}
	switch p.MoveProposer {
	case SystematicProposer, RandomProposer:
	default:
		return fmt.Errorf("move proposer %q: %w", p.MoveProposer, ErrUnknownVariant)
	}
	return nil
}
