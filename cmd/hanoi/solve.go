package main

import (
	"github.com/aretw0/hanoi/internal/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle described by flags",
	Long:  `Solves the puzzle given by --discs, --from, --disc and --to without asking any question.`,
	Example: `  hanoi solve -n 3 --from A --to C --show-moves
  hanoi solve -n 10 --disc 4 --to B --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunSolve(cmd.Context(), opts)
	},
}

func init() {
	addPuzzleFlags(solveCmd)
	rootCmd.AddCommand(solveCmd)
}
