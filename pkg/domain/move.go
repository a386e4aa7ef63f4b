package domain

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Disc is the size of a puzzle piece, 1 being the smallest.
type Disc int

// Snapshot is a copy of every rod's discs, bottom to top.
type Snapshot map[Rod][]Disc

// String renders the snapshot as "A: 3 2 1 | B: | C:".
func (s Snapshot) String() string {
	parts := make([]string, 0, len(Rods))
	for _, r := range Rods {
		parts = append(parts, strings.TrimSpace(string(r)+": "+joinDiscs(s[r])))
	}
	return strings.Join(parts, " | ")
}

func joinDiscs(discs []Disc) string {
	var b strings.Builder
	for i, d := range discs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(d)))
	}
	return b.String()
}

// Move records one relocated disc and the rods right after it landed.
type Move struct {
	Disc  Disc     `json:"disc"`
	From  Rod      `json:"from"`
	To    Rod      `json:"to"`
	After Snapshot `json:"rods"`
}

// MoveCount returns the number of moves needed to relocate a stack of
// discs between two distinct rods (2^discs - 1). Counts that do not fit in
// an int saturate at math.MaxInt.
func MoveCount(discs int) int {
	if discs <= 0 {
		return 0
	}
	if discs >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1<<discs - 1
}
