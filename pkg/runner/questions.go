package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// DefaultMaxDiscs bounds the disc count. The move log keeps a snapshot per
// move and grows as 2^n: 16 discs is 65535 moves and roughly 40 MB.
const DefaultMaxDiscs = 16

var (
	ErrNotANumber   = errors.New("not a whole number")
	ErrInvalidReply = errors.New("answer must be y or n")
)

// ParseCount parses a whole number made of digits only.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNotANumber
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}

// ParseDiscCount accepts a disc count in [1, limit].
func ParseDiscCount(limit int) func(string) (int, error) {
	return func(s string) (int, error) {
		n, err := ParseCount(s)
		if err != nil {
			return 0, err
		}
		if n < 1 || n > limit {
			return 0, fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidDiscCount, n, limit)
		}
		return n, nil
	}
}

// ParseDisc accepts a disc rank in [1, discs].
func ParseDisc(discs int) func(string) (domain.Disc, error) {
	return func(s string) (domain.Disc, error) {
		n, err := ParseCount(s)
		if err != nil {
			return 0, err
		}
		if n < 1 || n > discs {
			return 0, fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidDisc, n, discs)
		}
		return domain.Disc(n), nil
	}
}

// ParseYesNo accepts y/yes and n/no in any case.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidReply, s)
}

// DiscCountQuestion asks for the number of discs.
func DiscCountQuestion(limit int) Question[int] {
	return Question[int]{
		Text:  "How many discs would you like for the puzzle?",
		Retry: "Please provide a valid number of discs.",
		Parse: ParseDiscCount(limit),
	}
}

// StartRodQuestion asks where the discs start.
func StartRodQuestion() Question[domain.Rod] {
	return Question[domain.Rod]{
		Text:  "What rod should the discs start on? " + rodChoices(),
		Retry: "Please provide a valid rod.",
		Parse: domain.ParseRod,
	}
}

// DiscQuestion asks which disc, with those above it, to relocate.
func DiscQuestion(discs int) Question[domain.Disc] {
	return Question[domain.Disc]{
		Text:  "What disc should be moved?",
		Retry: "Please provide a valid disc to move.",
		Parse: ParseDisc(discs),
	}
}

// TargetRodQuestion asks where the relocated discs end up.
func TargetRodQuestion() Question[domain.Rod] {
	return Question[domain.Rod]{
		Text:  "What rod should the disc and those above it end up on? " + rodChoices(),
		Retry: "Please provide a valid rod.",
		Parse: domain.ParseRod,
	}
}

// ShowMovesQuestion asks whether every move should be listed.
func ShowMovesQuestion() Question[bool] {
	return Question[bool]{
		Text:  "Would you like to see the moves? (y/n)",
		Retry: "Please provide a valid answer.",
		Parse: ParseYesNo,
	}
}

func rodChoices() string {
	names := make([]string, 0, len(domain.Rods))
	for _, r := range domain.Rods {
		names = append(names, string(r))
	}
	return "(" + strings.Join(names, ", ") + ")"
}
