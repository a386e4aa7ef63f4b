package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Engine applies moves to puzzle states and solves relocations.
// It holds no puzzle state of its own; every call receives the State it
// operates on, so one Engine can serve any number of puzzles.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger used for move tracing.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply moves the top disc of from onto to.
// The state is only mutated when every rule holds; on failure it returns a
// *domain.MoveError wrapping ErrInvalidRod, ErrEmptySource or ErrIllegalStacking.
func (e *Engine) Apply(ctx context.Context, state *domain.State, from, to domain.Rod) error {
	if !from.Valid() || !to.Valid() {
		return e.reject(ctx, state, &domain.MoveError{From: from, To: to, Err: domain.ErrInvalidRod})
	}

	disc, ok := state.Top(from)
	if !ok {
		return e.reject(ctx, state, &domain.MoveError{From: from, To: to, Err: domain.ErrEmptySource})
	}

	// A same-rod move puts the disc straight back, so only a different rod can block it.
	if from != to {
		if top, ok := state.Top(to); ok && top < disc {
			return e.reject(ctx, state, &domain.MoveError{Disc: disc, From: from, To: to, Err: domain.ErrIllegalStacking})
		}
	}

	src := state.Rods[from]
	state.Rods[from] = src[:len(src)-1]
	state.Rods[to] = append(state.Rods[to], disc)

	move := domain.Move{Disc: disc, From: from, To: to, After: state.Snapshot()}
	state.Moves = append(state.Moves, move)

	e.logger.Debug("Move", "step", len(state.Moves), "disc", disc, "from", from, "to", to)
	if e.hooks.OnMove != nil {
		e.hooks.OnMove(ctx, &domain.MoveEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventMove},
			Move:      move,
			Step:      len(state.Moves),
		})
	}
	return nil
}

func (e *Engine) reject(ctx context.Context, state *domain.State, merr *domain.MoveError) error {
	e.logger.Debug("Move rejected", "from", merr.From, "to", merr.To, "err", merr.Err)
	if e.hooks.OnMoveReject != nil {
		e.hooks.OnMoveReject(ctx, &domain.MoveEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventMoveReject},
			Move:      domain.Move{Disc: merr.Disc, From: merr.From, To: merr.To},
			Step:      len(state.Moves),
			Err:       merr,
		})
	}
	return merr
}

// Solve relocates disc and every smaller disc above it from one rod to
// another using the third rod as spare storage. Relocating the full stack
// of k discs takes exactly 2^k - 1 moves.
//
// A disc of zero is a no-op, and so is from == to: the discs are already
// where they should be. The first rejected move aborts the solve.
func (e *Engine) Solve(ctx context.Context, state *domain.State, disc domain.Disc, from, to domain.Rod) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("solve %s -> %s: %w", from, to, domain.ErrInvalidRod)
	}
	if disc < 0 || int(disc) > state.Discs {
		return fmt.Errorf("solve disc %d of %d: %w", disc, state.Discs, domain.ErrInvalidDisc)
	}
	for d := domain.Disc(1); d <= disc; d++ {
		if r, _ := state.Locate(d); r != from {
			return fmt.Errorf("solve disc %d: disc %d is not on rod %s: %w", disc, d, from, domain.ErrInvalidDisc)
		}
	}

	start := e.now()
	before := len(state.Moves)
	if e.hooks.OnSolveStart != nil {
		e.hooks.OnSolveStart(ctx, &domain.SolveEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventSolveStart},
			Disc:      disc,
			From:      from,
			To:        to,
		})
	}
	e.logger.Info("Solve started", "disc", disc, "from", from, "to", to)

	var err error
	if from != to {
		err = e.relocate(ctx, state, disc, from, to)
	}

	end := e.now()
	moves := len(state.Moves) - before
	if err != nil {
		e.logger.Info("Solve aborted", "moves", moves, "err", err)
	} else {
		e.logger.Info("Solve finished", "moves", moves, "duration", end.Sub(start))
	}
	if e.hooks.OnSolveEnd != nil {
		e.hooks.OnSolveEnd(ctx, &domain.SolveEvent{
			EventBase: domain.EventBase{Timestamp: end, Type: domain.EventSolveEnd},
			Disc:      disc,
			From:      from,
			To:        to,
			Moves:     moves,
			Duration:  end.Sub(start),
			Err:       err,
		})
	}
	return err
}

func (e *Engine) relocate(ctx context.Context, state *domain.State, disc domain.Disc, from, to domain.Rod) error {
	if disc == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	aux, ok := domain.Auxiliary(from, to)
	if !ok {
		return fmt.Errorf("no spare rod for %s -> %s: %w", from, to, domain.ErrInvalidRod)
	}

	if err := e.relocate(ctx, state, disc-1, from, aux); err != nil {
		return err
	}
	if err := e.Apply(ctx, state, from, to); err != nil {
		return fmt.Errorf("relocating disc %d: %w", disc, err)
	}
	return e.relocate(ctx, state, disc-1, aux, to)
}
