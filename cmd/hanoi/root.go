package main

import (
	"fmt"
	"os"

	"github.com/aretw0/hanoi/internal/cli"
	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "hanoi solves Tower of Hanoi puzzles step by step",
	Long: `hanoi asks for a disc count, a starting rod and a disc to relocate,
then solves the puzzle recursively and optionally lists every move.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML file with preset settings")
	flags.Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	flags.Bool("plain", false, "Disable banner and markdown rendering")
	flags.Bool("debug", false, "Write debug logs to stderr")
	flags.Bool("metrics", false, "Write Prometheus metrics to stderr on exit")
	flags.Int("max-discs", config.Default().MaxDiscs, "Largest accepted disc count")
	flags.Int("max-input-size", config.Default().MaxInputSize, "Largest accepted answer in bytes")
}

// addPuzzleFlags registers the flags describing a puzzle.
func addPuzzleFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("discs", "n", 0, "Number of discs")
	cmd.Flags().String("from", string(domain.RodA), "Rod the discs start on (A, B, C)")
	cmd.Flags().Int("disc", 0, "Disc to relocate with those above it (default: all discs)")
	cmd.Flags().String("to", string(domain.RodC), "Rod the discs end up on (A, B, C)")
	cmd.Flags().Bool("show-moves", false, "List every move")
}

// loadOptions builds the run options from the config file and flags.
// Flags explicitly set on the command line win over the file.
func loadOptions(cmd *cobra.Command) (cli.RunOptions, error) {
	cfg := config.Default()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cli.RunOptions{}, err
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cli.RunOptions{}, err
		}
		cfg = loaded
	}

	raw := map[string]any{}
	for flag, key := range map[string]string{
		"json":           "json",
		"plain":          "plain",
		"debug":          "debug",
		"metrics":        "metrics",
		"max-discs":      "max_discs",
		"max-input-size": "max_input_size",
		"discs":          "discs",
		"from":           "from",
		"disc":           "disc",
		"to":             "to",
		"show-moves":     "show_moves",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		raw[key] = f.Value.String()
	}
	if err := config.Decode(raw, &cfg); err != nil {
		return cli.RunOptions{}, fmt.Errorf("invalid flags: %w", err)
	}

	return cli.RunOptions{
		Config: cfg,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}, nil
}
