package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/observability"
	"github.com/aretw0/hanoi/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout prompts).
func createLogger(debug bool, w io.Writer) *slog.Logger {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug)
	}
	return logging.NewNop()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// richOutput decides whether banner and markdown rendering are used.
func richOutput(opts RunOptions, w io.Writer) bool {
	return !opts.Config.JSON && !opts.Config.Plain && isTerminal(w)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// createHandler selects the IOHandler for the configured mode.
func createHandler(opts RunOptions, in io.Reader, out io.Writer) runner.IOHandler {
	if opts.Config.JSON {
		h := runner.NewJSONHandler(in, out)
		h.MaxInputSize = opts.Config.MaxInputSize
		return h
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithTextHandlerMaxInputSize(opts.Config.MaxInputSize),
	}
	if richOutput(opts, out) {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
	}
	return runner.NewTextHandler(in, out, handlerOpts...)
}

// instrumentation bundles the solver and, when enabled, its metrics registry.
type instrumentation struct {
	solver   *hanoi.Solver
	registry *prometheus.Registry
}

func createSolver(opts RunOptions, logger *slog.Logger) (*instrumentation, error) {
	solverOpts := []hanoi.Option{hanoi.WithLogger(logger)}

	inst := &instrumentation{}
	if opts.Config.Metrics {
		inst.registry = prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(inst.registry)
		if err != nil {
			return nil, err
		}
		solverOpts = append(solverOpts, hanoi.WithLifecycleHooks(metrics.Hooks()))
	}
	inst.solver = hanoi.New(solverOpts...)
	return inst, nil
}

// dumpMetrics writes collected metrics, if any, to w.
func (i *instrumentation) dumpMetrics(w io.Writer) error {
	if i.registry == nil {
		return nil
	}
	return observability.WriteText(w, i.registry)
}

// isInterrupted reports whether the session ended by signal or end of input.
func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, err error, sig os.Signal, quiet bool) {
	if quiet || err == nil || !isInterrupted(err) {
		return
	}
	switch {
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted.")
	case sig != nil:
		fmt.Fprintln(w)
		printSystemMessage(w, "Terminated.")
	default:
		printSystemMessage(w, "End of input.")
	}
}
