package domain

import (
	"fmt"
	"strings"
)

// Rod identifies one of the three pegs of the puzzle.
type Rod string

const (
	RodA Rod = "A"
	RodB Rod = "B"
	RodC Rod = "C"
)

// Rods lists every rod in display order.
var Rods = [...]Rod{RodA, RodB, RodC}

// Valid reports whether r is one of the three known rods.
func (r Rod) Valid() bool {
	return r.index() >= 0
}

func (r Rod) index() int {
	for i, rod := range Rods {
		if rod == r {
			return i
		}
	}
	return -1
}

func (r Rod) String() string { return string(r) }

// ParseRod converts user text into a Rod. Surrounding whitespace and letter
// case are ignored.
func ParseRod(s string) (Rod, error) {
	r := Rod(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRod, s)
	}
	return r, nil
}

// Auxiliary returns the rod that is neither from nor to.
// It returns false when from and to are equal or either is unknown,
// since the spare rod is then not unique.
func Auxiliary(from, to Rod) (Rod, bool) {
	if !from.Valid() || !to.Valid() || from == to {
		return "", false
	}
	for _, r := range Rods {
		if r != from && r != to {
			return r, true
		}
	}
	return "", false
}
