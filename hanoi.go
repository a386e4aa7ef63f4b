package hanoi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/hanoi/internal/runtime"
	"github.com/aretw0/hanoi/pkg/domain"
)

// Solver is the high-level entry point for the hanoi library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Solver struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLifecycleHooks registers observability hooks. Repeated calls are merged.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Solver) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// New initializes a new Solver.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	s.runtime = runtime.NewEngine(
		runtime.WithLifecycleHooks(s.hooks),
		runtime.WithLogger(s.logger),
	)
	return s
}

// NewPuzzle creates a puzzle with every disc stacked on start, largest at the bottom.
func (s *Solver) NewPuzzle(discs int, start domain.Rod) (*domain.State, error) {
	state, err := domain.NewState(discs, start)
	if err != nil {
		return nil, fmt.Errorf("new puzzle: %w", err)
	}
	return state, nil
}

// Move applies a single move of the top disc of from onto to.
func (s *Solver) Move(ctx context.Context, state *domain.State, from, to domain.Rod) error {
	return s.runtime.Apply(ctx, state, from, to)
}

// Solve moves disc, together with every disc above it, onto rod to.
// The disc's current rod is looked up in the state.
func (s *Solver) Solve(ctx context.Context, state *domain.State, disc domain.Disc, to domain.Rod) error {
	from, ok := state.Locate(disc)
	if !ok {
		return fmt.Errorf("solve: disc %d of %d: %w", disc, state.Discs, domain.ErrInvalidDisc)
	}
	return s.SolveFrom(ctx, state, disc, from, to)
}

// SolveFrom is Solve with an explicit source rod.
func (s *Solver) SolveFrom(ctx context.Context, state *domain.State, disc domain.Disc, from, to domain.Rod) error {
	if err := s.runtime.Solve(ctx, state, disc, from, to); err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	return nil
}
