package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solar/algorithm"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the strategy presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-38s  %s\n", "Preset", "Cells/Cursor/Proposer")
		for _, name := range algorithm.PresetNames() {
			params, _ := algorithm.Preset(name)
			fmt.Fprintf(out, "%-38s  %s\n", name, params)
		}
	},
}
