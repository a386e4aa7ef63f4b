package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/presentation/graph"
	"github.com/aretw0/hanoi/pkg/domain"
)

func solve(t *testing.T, discs int) (domain.Snapshot, []domain.Move) {
	t.Helper()
	solver := hanoi.New()
	puzzle, err := solver.NewPuzzle(discs, domain.RodA)
	if err != nil {
		t.Fatal(err)
	}
	start := puzzle.Snapshot()
	if err := solver.Solve(context.Background(), puzzle, domain.Disc(discs), domain.RodC); err != nil {
		t.Fatal(err)
	}
	return start, puzzle.Moves
}

func TestGenerateMermaid(t *testing.T) {
	start, moves := solve(t, 2)

	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes And Edges",
			contains: []string{
				"graph TD\n",
				`s0(("A: 2 1 | B: | C:"))`,
				`s1["A: 2 | B: 1 | C:"]`,
				`s3((("A: | B: | C: 2 1")))`,
				`s0 -- "disc 1: A → B" --> s1`,
				`s1 -- "disc 2: A → C" --> s2`,
			},
			excludes: []string{"linkStyle", "classDef"},
		},
		{
			name:    "Overlay",
			overlay: &graph.Overlay{HighlightDisc: 2},
			contains: []string{
				"linkStyle 1 stroke:#fbc02d",
				"class s3 current;",
			},
			excludes: []string{"linkStyle 0", "linkStyle 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(start, moves, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output to not contain %q\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_NoMoves(t *testing.T) {
	got := graph.GenerateMermaid(domain.Snapshot{domain.RodB: {1}}, nil, nil)
	if !strings.Contains(got, `s0(("A: | B: 1 | C:"))`) {
		t.Errorf("unexpected output:\n%s", got)
	}
}
