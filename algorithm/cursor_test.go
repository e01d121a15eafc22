package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"solar/game"
)

func TestOriginCursorInitializer(t *testing.T) {
	cells := []game.Coordinates{{X: 4, Y: 0}, {X: 0, Y: 0}}

	require.Equal(t, 0, NewOriginCursorInitializer().InitialIndex(cells),
		"Origin cursor should start at index 0 of the enumerated cells")
}

func TestRandomCursorInitializer(t *testing.T) {
	t.Run("index stays within the cells", func(t *testing.T) {
		cells := make([]game.Coordinates, 7)
		init := NewRandomCursorInitializer(rand.New(rand.NewSource(1)))

		for i := 0; i < 100; i++ {
			index := init.InitialIndex(cells)
			require.GreaterOrEqual(t, index, 0)
			require.Less(t, index, len(cells))
		}
	})

	t.Run("same seed gives the same index", func(t *testing.T) {
		cells := make([]game.Coordinates, 64)
		init1 := NewRandomCursorInitializer(rand.New(rand.NewSource(42)))
		init2 := NewRandomCursorInitializer(rand.New(rand.NewSource(42)))

		require.Equal(t, init1.InitialIndex(cells), init2.InitialIndex(cells))
	})

	t.Run("panics without cells", func(t *testing.T) {
		init := NewRandomCursorInitializer(rand.New(rand.NewSource(1)))

		require.Panics(t, func() { init.InitialIndex(nil) })
	})
}
