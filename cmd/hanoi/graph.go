package main

import (
	"github.com/aretw0/hanoi/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the solve as a Mermaid diagram",
	Long:  `Solves the puzzle given by flags and outputs a Mermaid flowchart (graph TD) of every rod configuration it passes through.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunGraph(cmd.Context(), opts)
	},
}

func init() {
	addPuzzleFlags(graphCmd)
	rootCmd.AddCommand(graphCmd)
}
