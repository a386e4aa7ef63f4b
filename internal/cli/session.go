package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/runner"
)

// RunSession executes a single interactive solving session.
func RunSession(ctx context.Context, opts RunOptions) error {
	in, out, errOut := opts.streams()
	logger := createLogger(opts.Config.Debug, errOut)

	if richOutput(opts, out) {
		tui.PrintBanner(out, hanoi.Version)
	}

	inst, err := createSolver(opts, logger)
	if err != nil {
		return fmt.Errorf("error initializing solver: %w", err)
	}

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithSolver(inst.solver),
		runner.WithInputHandler(createHandler(opts, in, out)),
		runner.WithMaxDiscs(opts.Config.MaxDiscs),
	)

	report, runErr := r.Run(sigCtx)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	if runErr != nil {
		logger.Info("Session ended", "err", runErr)
	} else {
		logger.Info("Session finished", "moves", report.MoveCount())
	}
	logCompletion(out, runErr, sigCtx.Signal(), opts.Config.JSON)

	if err := inst.dumpMetrics(errOut); err != nil {
		logger.Warn("Failed to write metrics", "err", err)
	}
	return handleExecutionError(runErr)
}
