package domain

import "fmt"

// State is the complete puzzle: the three rods and the move log.
// It must only be mutated through the runtime engine so the stacking
// invariant is enforced at a single place.
type State struct {
	// Discs is the total number of discs in the puzzle.
	Discs int

	// Rods holds each rod's discs from bottom to top.
	Rods map[Rod][]Disc

	// Moves is the append-only log of applied moves.
	Moves []Move
}

// NewState creates a puzzle with discs N..1 stacked on start.
func NewState(discs int, start Rod) (*State, error) {
	if discs < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDiscCount, discs)
	}
	if !start.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRod, start)
	}

	s := &State{
		Discs: discs,
		Rods:  make(map[Rod][]Disc, len(Rods)),
	}
	for _, r := range Rods {
		s.Rods[r] = nil
	}
	stack := make([]Disc, 0, discs)
	for d := discs; d > 0; d-- {
		stack = append(stack, Disc(d))
	}
	s.Rods[start] = stack
	return s, nil
}

// Top returns the topmost disc of r, or false if r is empty.
func (s *State) Top(r Rod) (Disc, bool) {
	discs := s.Rods[r]
	if len(discs) == 0 {
		return 0, false
	}
	return discs[len(discs)-1], true
}

// Locate returns the rod that currently holds disc d.
func (s *State) Locate(d Disc) (Rod, bool) {
	for _, r := range Rods {
		for _, held := range s.Rods[r] {
			if held == d {
				return r, true
			}
		}
	}
	return "", false
}

// Snapshot returns a deep copy of the rods. The three rods share one
// backing array so a snapshot costs a single disc allocation.
func (s *State) Snapshot() Snapshot {
	total := 0
	for _, r := range Rods {
		total += len(s.Rods[r])
	}
	buf := make([]Disc, 0, total)

	snap := make(Snapshot, len(Rods))
	for _, r := range Rods {
		n := len(buf)
		buf = append(buf, s.Rods[r]...)
		snap[r] = buf[n:len(buf):len(buf)]
	}
	return snap
}

// Validate checks that every disc 1..Discs appears exactly once and that
// each rod is strictly decreasing from bottom to top.
func (s *State) Validate() error {
	seen := make(map[Disc]bool, s.Discs)
	for r, discs := range s.Rods {
		if !r.Valid() {
			return fmt.Errorf("%w: unknown rod %q", ErrCorruptState, r)
		}
		for i, d := range discs {
			if d < 1 || int(d) > s.Discs {
				return fmt.Errorf("%w: disc %d on rod %s out of range", ErrCorruptState, d, r)
			}
			if seen[d] {
				return fmt.Errorf("%w: disc %d appears twice", ErrCorruptState, d)
			}
			seen[d] = true
			if i > 0 && discs[i-1] <= d {
				return fmt.Errorf("%w: disc %d rests on disc %d on rod %s", ErrCorruptState, d, discs[i-1], r)
			}
		}
	}
	if len(seen) != s.Discs {
		return fmt.Errorf("%w: %d of %d discs present", ErrCorruptState, len(seen), s.Discs)
	}
	return nil
}
