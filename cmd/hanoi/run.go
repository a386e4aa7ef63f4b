package main

import (
	"github.com/aretw0/hanoi/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve a puzzle interactively",
	Long:  `Asks for the puzzle setup question by question, re-asking until every answer is valid, then solves it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunSession(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Make 'run' the default if no command is provided.
	rootCmd.RunE = runCmd.RunE
}
