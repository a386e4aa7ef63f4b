package runner

import (
	"log/slog"

	"github.com/aretw0/hanoi"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithSolver configures the solver used to execute settings.
func WithSolver(solver *hanoi.Solver) Option {
	return func(r *Runner) {
		r.Solver = solver
	}
}

// WithMaxDiscs bounds the disc count accepted at the prompt.
func WithMaxDiscs(n int) Option {
	return func(r *Runner) {
		r.MaxDiscs = n
	}
}
