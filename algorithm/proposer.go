package algorithm

import (
	"fmt"

	"golang.org/x/exp/rand"

	"solar/game"
)

// systematicMoveProposer walks the claimable cells in order and wraps around,
// visiting each one exactly once per cycle.
type systematicMoveProposer struct {
	count  int
	cursor int
}

func NewSystematicMoveProposer(params GameParameters, cells []game.Coordinates, cursor int) MoveProposer {
	return &systematicMoveProposer{count: len(cells), cursor: cursor}
}

func (p *systematicMoveProposer) ProposeMove() int {
	p.cursor++
	if p.cursor >= p.count {
		p.cursor = 0
	}
	return p.cursor
}

// randomMoveProposer ignores the cursor; every proposal is an independent
// uniform pick.
type randomMoveProposer struct {
	count int
	rng   *rand.Rand
}

func NewRandomMoveProposer(params GameParameters, cells []game.Coordinates, rng *rand.Rand) MoveProposer {
	return &randomMoveProposer{count: len(cells), rng: rng}
}

func (p *randomMoveProposer) ProposeMove() int {
	return p.rng.Intn(p.count)
}

func newMoveProposer(kind MoveProposerKind, params GameParameters, cells []game.Coordinates, cursor int, rng *rand.Rand) (MoveProposer, error) {
	switch kind {
	case SystematicProposer:
		return NewSystematicMoveProposer(params, cells, cursor), nil
	case RandomProposer:
		return NewRandomMoveProposer(params, cells, rng), nil
	default:
		return nil, fmt.Errorf("move proposer %q: %w", kind, ErrUnknownVariant)
	}
}
