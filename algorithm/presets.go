package algorithm

import (
	"fmt"

	"golang.org/x/exp/slices"
)

var presets = map[string]AlgorithmParameters{
	"random": {
		CellCalculator:    AllCells,
		CursorInitializer: OriginCursor,
		MoveProposer:      RandomProposer,
	},
	"systematic": {
		CellCalculator:    AllCells,
		CursorInitializer: OriginCursor,
		MoveProposer:      SystematicProposer,
	},
	"systematic-max-shade": {
		CellCalculator:    MaxShade,
		CursorInitializer: OriginCursor,
		MoveProposer:      SystematicProposer,
	},
	"random-start-systematic-max-shade": {
		CellCalculator:    MaxShade,
		CursorInitializer: RandomCursor,
		MoveProposer:      SystematicProposer,
	},
	"random-start-random-offset-max-shade": {
		CellCalculator:    RandomOffsetMaxShade,
		CursorInitializer: RandomCursor,
		MoveProposer:      SystematicProposer,
	},
	"random-max-shade": {
		CellCalculator:    MaxShade,
		CursorInitializer: OriginCursor,
		MoveProposer:      RandomProposer,
	},
}

// Preset returns the parameters registered under name.
func Preset(name string) (AlgorithmParameters, error) {
	params, ok := presets[name]
	if !ok {
		return AlgorithmParameters{}, fmt.Errorf("preset %q: %w", name, ErrUnknownVariant)
	}
	return params, nil
}

// PresetNames lists the registered presets alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
