package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"solar/game"
)

var testGame = GameParameters{Width: 8, Height: 8, ShadeSize: 3}

func TestNew(t *testing.T) {
	t.Run("composing the three policies", func(t *testing.T) {
		ap := AlgorithmParameters{CellCalculator: MaxShade, CursorInitializer: OriginCursor, MoveProposer: SystematicProposer}

		alg, err := New(testGame, ap, WithSeed(42))

		require.NoError(t, err)
		require.Len(t, alg.ClaimableCells(), 16, "Two columns of eight rows should be claimable")
		require.Equal(t, 0, alg.Cursor())
		require.Equal(t, ap, alg.Parameters())
		require.Equal(t, "max-shade/origin/systematic", alg.Name())
	})

	t.Run("naming the algorithm", func(t *testing.T) {
		alg, err := New(testGame, presets["random"], WithName("baseline"))

		require.NoError(t, err)
		require.Equal(t, "baseline", alg.Name())
	})

	t.Run("rejecting unknown variants", func(t *testing.T) {
		_, err := New(testGame, AlgorithmParameters{CellCalculator: AllCells, CursorInitializer: "middle", MoveProposer: RandomProposer})

		require.ErrorIs(t, err, ErrUnknownVariant)
	})

	t.Run("rejecting a missing shade size", func(t *testing.T) {
		_, err := New(GameParameters{Width: 8, Height: 8}, presets["systematic-max-shade"])

		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("rejecting an offset with no columns left", func(t *testing.T) {
		ap := AlgorithmParameters{CellCalculator: OffsetMaxShade, CursorInitializer: OriginCursor, MoveProposer: SystematicProposer, OffsetSeed: 2}

		_, err := New(GameParameters{Width: 2, Height: 4, ShadeSize: 3}, ap)

		require.ErrorIs(t, err, ErrNoClaimableCells)
	})
}

func TestAlgorithmProposeMove(t *testing.T) {
	t.Run("first proposal is the initial cursor cell", func(t *testing.T) {
		alg, err := New(testGame, presets["systematic-max-shade"], WithSeed(1))
		require.NoError(t, err)

		require.Equal(t, game.Coordinates{X: 0, Y: 0}, alg.ProposeMove())
		require.Equal(t, game.Coordinates{X: 0, Y: 1}, alg.ProposeMove(), "Next proposal should be one row below")
		require.Equal(t, 2, alg.Cursor())
	})

	t.Run("random start returns its starting cell first", func(t *testing.T) {
		alg, err := New(testGame, presets["random-start-systematic-max-shade"], WithSeed(42))
		require.NoError(t, err)
		start := alg.ClaimableCells()[alg.Cursor()]

		require.Equal(t, start, alg.ProposeMove())
	})

	t.Run("systematic proposals cycle through every claimable cell", func(t *testing.T) {
		alg, err := New(testGame, presets["random-start-systematic-max-shade"], WithSeed(42))
		require.NoError(t, err)
		cells := alg.ClaimableCells()

		proposed := []game.Coordinates{}
		for i := 0; i <= len(cells); i++ {
			proposed = append(proposed, alg.ProposeMove())
		}

		require.Equal(t, proposed[0], proposed[len(proposed)-1], "Proposals should loop back to the start")
		require.ElementsMatch(t, cells, proposed[:len(cells)], "A cycle should visit every cell once")
	})

	t.Run("proposals are always claimable cells", func(t *testing.T) {
		for _, name := range PresetNames() {
			alg, err := New(testGame, presets[name], WithSeed(7))
			require.NoError(t, err)
			cells := alg.ClaimableCells()

			for i := 0; i < 100; i++ {
				require.Contains(t, cells, alg.ProposeMove(), "Preset %s proposed an unclaimable cell", name)
			}
		}
	})
}

func TestAlgorithmReproducibility(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			alg1, err := New(testGame, presets[name], WithSeed(42))
			require.NoError(t, err)
			alg2, err := New(testGame, presets[name], WithSeed(42))
			require.NoError(t, err)

			require.Equal(t, alg1.ClaimableCells(), alg2.ClaimableCells())
			for i := 0; i < 50; i++ {
				require.Equal(t, alg1.ProposeMove(), alg2.ProposeMove(),
					"Same seed should give the same proposal %d", i)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	names := PresetNames()

	require.IsIncreasing(t, names)
	for _, name := range names {
		params, err := Preset(name)
		require.NoError(t, err)
		require.NoError(t, params.Validate(), "Preset %s should be valid", name)
	}

	_, err := Preset("minimax")
	require.ErrorIs(t, err, ErrUnknownVariant)
}
