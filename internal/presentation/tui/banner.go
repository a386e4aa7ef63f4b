package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for hanoi.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"        |          |          |", "#818cf8"},
		{"       -|-         |          |", "#a78bfa"},
		{"      --|--        |          |", "#c084fc"},
		{"     ---|---       |          |", "#e879f9"},
		{"  ======A==========B==========C======", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String(fmt.Sprintf("  Tower of Hanoi solver v%s", version)).Faint())
	fmt.Fprintln(w)
}
