package algorithm

import (
	"fmt"

	"golang.org/x/exp/rand"

	"solar/game"
)

type originCursorInitializer struct{}

// NewOriginCursorInitializer starts the cursor at the first claimable cell.
func NewOriginCursorInitializer() CursorInitializer {
	return originCursorInitializer{}
}

func (originCursorInitializer) InitialIndex(cells []game.Coordinates) int {
	return 0
}

type randomCursorInitializer struct {
	rng *rand.Rand
}

// NewRandomCursorInitializer starts the cursor at a uniformly random claimable cell.
func NewRandomCursorInitializer(rng *rand.Rand) CursorInitializer {
	return randomCursorInitializer{rng: rng}
}

func (c randomCursorInitializer) InitialIndex(cells []game.Coordinates) int {
	if len(cells) == 0 {
		panic("cannot place a cursor over no cells")
	}
	return c.rng.Intn(len(cells))
}

func newCursorInitializer(kind CursorInitializerKind, rng *rand.Rand) (CursorInitializer, error) {
	switch kind {
	case OriginCursor:
		return NewOriginCursorInitializer(), nil
	case RandomCursor:
		return NewRandomCursorInitializer(rng), nil
	default:
		return nil, fmt.Errorf("cursor initializer %q: %w", kind, ErrUnknownVariant)
	}
}
