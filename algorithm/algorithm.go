package algorithm

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"solar/game"
)

type Option func(a *options)

type options struct {
	seed    int64
	hasSeed bool
	name    string
}

// WithSeed makes every random choice of the algorithm reproducible.
// Algorithms built from the same parameters and seed propose the same moves.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithName labels the algorithm in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// Algorithm is a strategy composed of a cell calculator, a cursor
// initializer and a move proposer. The claimable cells are fixed at
// construction; only the cursor moves.
type Algorithm struct {
	name     string
	params   AlgorithmParameters
	cells    []game.Coordinates
	cursor   int
	proposer MoveProposer
}

// New builds an Algorithm: it calculates the claimable cells, places the
// cursor, then binds the move proposer to both. All three policies share one
// generator seeded from WithSeed, or from the clock when no seed is given.
func New(gp GameParameters, ap AlgorithmParameters, opts ...Option) (*Algorithm, error) {
	o := options{name: ap.String()}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasSeed {
		o.seed = time.Now().UnixNano()
	}
	if err := gp.Validate(); err != nil {
		return nil, err
	}
	if err := ap.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(uint64(o.seed)))

	calculator, err := newCellCalculator(ap, gp, rng)
	if err != nil {
		return nil, err
	}
	cells := calculator.ClaimableCells(gp)
	if len(cells) == 0 {
		return nil, fmt.Errorf("%s on %dx%d board: %w", ap.CellCalculator, gp.Width, gp.Height, ErrNoClaimableCells)
	}

	initializer, err := newCursorInitializer(ap.CursorInitializer, rng)
	if err != nil {
		return nil, err
	}
	cursor := initializer.InitialIndex(cells)

	proposer, err := newMoveProposer(ap.MoveProposer, gp, cells, cursor, rng)
	if err != nil {
		return nil, err
	}

	return &Algorithm{
		name:     o.name,
		params:   ap,
		cells:    cells,
		cursor:   cursor,
		proposer: proposer,
	}, nil
}

// ProposeMove returns the cell under the cursor, then advances the cursor.
// The first call therefore returns the cell the cursor initializer chose.
func (a *Algorithm) ProposeMove() game.Coordinates {
	move := a.cells[a.cursor]
	a.cursor = a.proposer.ProposeMove()
	return move
}

func (a *Algorithm) Name() string {
	return a.name
}

func (a *Algorithm) Parameters() AlgorithmParameters {
	return a.params
}

// Cursor is the index of the cell the next proposal returns.
func (a *Algorithm) Cursor() int {
	return a.cursor
}

// ClaimableCells returns a copy of the cells the algorithm may propose.
func (a *Algorithm) ClaimableCells() []game.Coordinates {
	cells := make([]game.Coordinates, len(a.cells))
	copy(cells, a.cells)
	return cells
}
