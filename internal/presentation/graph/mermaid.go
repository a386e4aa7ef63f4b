package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Overlay contains emphasis hints applied on top of the move graph.
type Overlay struct {
	// HighlightDisc marks every move of this disc (usually the relocated one).
	HighlightDisc domain.Disc
}

// GenerateMermaid produces a Mermaid flowchart of the rod configurations a
// solve passes through. It applies semantic styling:
// - Start configuration: ((Circle))
// - Final configuration: (((Double circle)))
// - Intermediate: [Rectangle]
// Each edge is labelled with the disc and rods of the move.
func GenerateMermaid(start domain.Snapshot, moves []domain.Move, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	last := len(moves)
	writeNode := func(i int, snap domain.Snapshot) {
		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case i == last:
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(i), opener, escapeLabel(snap.String()), closer))
	}

	writeNode(0, start)
	for i, m := range moves {
		writeNode(i+1, m.After)
		sb.WriteString(fmt.Sprintf("    %s -- \"disc %d: %s → %s\" --> %s\n", nodeID(i), m.Disc, m.From, m.To, nodeID(i+1)))
	}

	if overlay != nil && overlay.HighlightDisc > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		for i, m := range moves {
			if m.Disc == overlay.HighlightDisc {
				sb.WriteString(fmt.Sprintf("    linkStyle %d stroke:#fbc02d,stroke-width:4px;\n", i))
			}
		}
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(last)))
	}

	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("s%d", i)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
