/*
Package hanoi is a Tower of Hanoi solver built around a single, explicit puzzle state.

It relocates any top-most sub-stack of discs between the three rods of the
classic puzzle using the recursive three-rod algorithm, recording every move
together with a snapshot of the rods. Move legality (known rods, non-empty
source, no disc on a smaller one) is enforced at a single place, so the
solver can be driven by hand as well as recursively.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/hanoi"
		"github.com/aretw0/hanoi/pkg/domain"
	)

	func main() {
		solver := hanoi.New()

		puzzle, err := solver.NewPuzzle(3, domain.RodA)
		if err != nil {
			log.Fatal(err)
		}

		if err := solver.Solve(context.Background(), puzzle, 3, domain.RodC); err != nil {
			log.Fatal(err)
		}

		for i, m := range puzzle.Moves {
			fmt.Printf("Step %d: Move disc %d from rod %s to %s\n", i+1, m.Disc, m.From, m.To)
		}
	}

The interactive command line front-end lives in cmd/hanoi; the prompt and
report plumbing it uses is available in pkg/runner.
*/
package hanoi
