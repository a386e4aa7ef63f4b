package cli

import (
	"io"
	"os"

	"github.com/aretw0/hanoi/internal/config"
)

// RunOptions contains all the configuration for the CLI commands.
type RunOptions struct {
	Config config.Config

	// Standard streams. Nil values fall back to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) streams() (io.Reader, io.Writer, io.Writer) {
	in, out, errOut := o.Stdin, o.Stdout, o.Stderr
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return in, out, errOut
}
