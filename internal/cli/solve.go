package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/hanoi/internal/presentation/graph"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
)

// Settings converts the configured puzzle into runner settings.
// A zero disc selects the whole stack.
func Settings(opts RunOptions) runner.Settings {
	disc := opts.Config.Disc
	if disc == 0 {
		disc = opts.Config.Discs
	}
	return runner.Settings{
		Discs:     opts.Config.Discs,
		From:      opts.Config.From,
		Disc:      domain.Disc(disc),
		To:        opts.Config.To,
		ShowMoves: opts.Config.ShowMoves,
	}
}

// RunSolve solves the configured puzzle without asking any question.
func RunSolve(ctx context.Context, opts RunOptions) error {
	in, out, errOut := opts.streams()
	logger := createLogger(opts.Config.Debug, errOut)

	inst, err := createSolver(opts, logger)
	if err != nil {
		return fmt.Errorf("error initializing solver: %w", err)
	}

	handler := createHandler(opts, in, out)
	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithSolver(inst.solver),
		runner.WithInputHandler(handler),
		runner.WithMaxDiscs(opts.Config.MaxDiscs),
	)

	report, err := r.Execute(ctx, Settings(opts))
	if err != nil {
		return err
	}
	if err := handler.Report(ctx, report); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if err := inst.dumpMetrics(errOut); err != nil {
		logger.Warn("Failed to write metrics", "err", err)
	}
	return nil
}

// RunGraph solves the configured puzzle and prints the moves as a Mermaid diagram.
func RunGraph(ctx context.Context, opts RunOptions) error {
	_, out, errOut := opts.streams()
	logger := createLogger(opts.Config.Debug, errOut)

	inst, err := createSolver(opts, logger)
	if err != nil {
		return fmt.Errorf("error initializing solver: %w", err)
	}
	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithSolver(inst.solver),
		runner.WithMaxDiscs(opts.Config.MaxDiscs),
	)

	report, err := r.Execute(ctx, Settings(opts))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, graph.GenerateMermaid(report.Start, report.Moves, &graph.Overlay{HighlightDisc: report.Disc}))
	return err
}
