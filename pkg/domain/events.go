package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventMove       EventType = "move"
	EventMoveReject EventType = "move_reject"
	EventSolveStart EventType = "solve_start"
	EventSolveEnd   EventType = "solve_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// MoveEvent is emitted for every applied or rejected move.
type MoveEvent struct {
	EventBase
	Move
	Step int   `json:"step"`
	Err  error `json:"-"`
}

// SolveEvent brackets a recursive solve.
type SolveEvent struct {
	EventBase
	Disc     Disc          `json:"disc"`
	From     Rod           `json:"from"`
	To       Rod           `json:"to"`
	Moves    int           `json:"moves"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnMove       func(context.Context, *MoveEvent)
	OnMoveReject func(context.Context, *MoveEvent)
	OnSolveStart func(context.Context, *SolveEvent)
	OnSolveEnd   func(context.Context, *SolveEvent)
}

// Merge combines hooks so that both h and other are invoked, h first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnMove:       chainMove(h.OnMove, other.OnMove),
		OnMoveReject: chainMove(h.OnMoveReject, other.OnMoveReject),
		OnSolveStart: chainSolve(h.OnSolveStart, other.OnSolveStart),
		OnSolveEnd:   chainSolve(h.OnSolveEnd, other.OnSolveEnd),
	}
}

func chainMove(a, b func(context.Context, *MoveEvent)) func(context.Context, *MoveEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *MoveEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainSolve(a, b func(context.Context, *SolveEvent)) func(context.Context, *SolveEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *SolveEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
