package runner

import (
	"context"
)

// Question describes one validated prompt.
type Question[T any] struct {
	// Text is shown to the user.
	Text string
	// Retry is shown after an answer Parse rejects.
	Retry string
	// Parse converts and validates an answer.
	Parse func(string) (T, error)
}

// Ask presents q until the answer parses. Only handler errors (end of
// input, cancellation) end the loop early.
func Ask[T any](ctx context.Context, h IOHandler, q Question[T]) (T, error) {
	var zero T
	for {
		answer, err := h.Input(ctx, q.Text)
		if err != nil {
			return zero, err
		}

		v, perr := q.Parse(answer)
		if perr == nil {
			return v, nil
		}

		if err := h.Output(ctx, q.Retry); err != nil {
			return zero, err
		}
		if err := h.Output(ctx, ""); err != nil {
			return zero, err
		}
	}
}
