package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRod is returned when a rod identifier is not A, B or C.
	ErrInvalidRod = errors.New("invalid rod")

	// ErrEmptySource is returned when moving from a rod that holds no discs.
	ErrEmptySource = errors.New("source rod is empty")

	// ErrIllegalStacking is returned when a disc would rest on a smaller one.
	ErrIllegalStacking = errors.New("disc cannot be placed on a smaller disc")

	// ErrInvalidDiscCount is returned when a puzzle is created with fewer than one disc.
	ErrInvalidDiscCount = errors.New("disc count must be positive")

	// ErrInvalidDisc is returned when a disc rank is outside [1, disc count].
	ErrInvalidDisc = errors.New("disc out of range")

	// ErrCorruptState is returned by Validate when a rod breaks the stacking invariant.
	ErrCorruptState = errors.New("inconsistent puzzle state")
)

// MoveError describes a rejected move. It unwraps to one of the sentinel
// errors above so callers can match with errors.Is.
type MoveError struct {
	Disc Disc // zero when the source rod was empty or unknown
	From Rod
	To   Rod
	Err  error
}

func (e *MoveError) Error() string {
	if e.Disc == 0 {
		return fmt.Sprintf("move %s -> %s: %v", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("move disc %d %s -> %s: %v", e.Disc, e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
