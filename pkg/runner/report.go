package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Report is the outcome of executing a set of Settings.
type Report struct {
	Discs     int
	Disc      domain.Disc
	From      domain.Rod
	To        domain.Rod
	ShowMoves bool

	Start domain.Snapshot
	Moves []domain.Move
	Final domain.Snapshot
}

// MoveCount returns the number of moves the solve took.
func (r *Report) MoveCount() int { return len(r.Moves) }

func (r *Report) summary() string {
	unit := "moves"
	if r.MoveCount() == 1 {
		unit = "move"
	}
	return fmt.Sprintf("It takes %d %s to solve the Tower of Hanoi puzzle with the given constraints.", r.MoveCount(), unit)
}

// Text renders the report as plain text, one step per paragraph.
func (r *Report) Text() string {
	var b strings.Builder
	b.WriteString(r.summary())
	b.WriteString("\n")
	if !r.ShowMoves {
		return b.String()
	}
	for i, m := range r.Moves {
		fmt.Fprintf(&b, "Step %d: Move disc %d from rod %s to %s\n", i+1, m.Disc, m.From, m.To)
		b.WriteString(m.After.String())
		b.WriteString("\n\n")
	}
	return b.String()
}

// Markdown renders the report as a markdown document with a table of moves.
func (r *Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tower of Hanoi\n\nDisc %d and those above it, rod %s to rod %s.\n\n", r.Disc, r.From, r.To)
	b.WriteString(r.summary())
	b.WriteString("\n\n")
	if r.ShowMoves && len(r.Moves) > 0 {
		b.WriteString("| Step | Disc | From | To | Rods |\n")
		b.WriteString("|---:|---:|:---:|:---:|:---|\n")
		for i, m := range r.Moves {
			fmt.Fprintf(&b, "| %d | %d | %s | %s | %s |\n", i+1, m.Disc, m.From, m.To, escapeCell(m.After.String()))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Final state: `%s`\n", r.Final)
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
