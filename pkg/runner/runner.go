package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/pkg/domain"
)

// Settings are the answers that define one solve.
type Settings struct {
	Discs     int
	From      domain.Rod
	Disc      domain.Disc
	To        domain.Rod
	ShowMoves bool
}

// Validate checks the settings against the puzzle rules.
func (s Settings) Validate() error {
	if s.Discs < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidDiscCount, s.Discs)
	}
	if !s.From.Valid() {
		return fmt.Errorf("start rod %q: %w", s.From, domain.ErrInvalidRod)
	}
	if !s.To.Valid() {
		return fmt.Errorf("target rod %q: %w", s.To, domain.ErrInvalidRod)
	}
	if s.Disc < 1 || int(s.Disc) > s.Discs {
		return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidDisc, s.Disc, s.Discs)
	}
	return nil
}

// Runner handles an interactive solving session using the provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Solver executes the settings. Defaults to hanoi.New with Logger.
	Solver *hanoi.Solver

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// MaxDiscs bounds the disc count accepted at the prompt.
	MaxDiscs int
}

// NewRunner creates a new Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	if r.Solver == nil {
		r.Solver = hanoi.New(hanoi.WithLogger(r.Logger))
	}
	if r.MaxDiscs <= 0 {
		r.MaxDiscs = DefaultMaxDiscs
	}
	return r
}

// Run asks for the puzzle setup, solves it and reports the result.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	settings, err := r.Collect(ctx)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("Settings collected",
		"discs", settings.Discs, "from", settings.From,
		"disc", settings.Disc, "to", settings.To, "show_moves", settings.ShowMoves)

	report, err := r.Execute(ctx, settings)
	if err != nil {
		return nil, err
	}
	if err := r.Handler.Report(ctx, report); err != nil {
		return report, fmt.Errorf("report: %w", err)
	}
	return report, nil
}

// Collect asks every setup question in order, re-asking until each answer is valid.
func (r *Runner) Collect(ctx context.Context) (Settings, error) {
	var s Settings
	var err error

	if s.Discs, err = Ask(ctx, r.Handler, DiscCountQuestion(r.MaxDiscs)); err != nil {
		return s, err
	}
	if err = r.Handler.Output(ctx, ""); err != nil {
		return s, err
	}

	if s.From, err = Ask(ctx, r.Handler, StartRodQuestion()); err != nil {
		return s, err
	}
	if err = r.Handler.Output(ctx, ""); err != nil {
		return s, err
	}

	puzzle, err := r.Solver.NewPuzzle(s.Discs, s.From)
	if err != nil {
		return s, err
	}
	for _, line := range []string{"Starting state of rods:", puzzle.Snapshot().String(), ""} {
		if err = r.Handler.Output(ctx, line); err != nil {
			return s, err
		}
	}

	if s.Disc, err = Ask(ctx, r.Handler, DiscQuestion(s.Discs)); err != nil {
		return s, err
	}
	if err = r.Handler.Output(ctx, ""); err != nil {
		return s, err
	}

	if s.To, err = Ask(ctx, r.Handler, TargetRodQuestion()); err != nil {
		return s, err
	}
	if err = r.Handler.Output(ctx, ""); err != nil {
		return s, err
	}

	if s.ShowMoves, err = Ask(ctx, r.Handler, ShowMovesQuestion()); err != nil {
		return s, err
	}
	if err = r.Handler.Output(ctx, ""); err != nil {
		return s, err
	}
	return s, nil
}

// Execute builds the puzzle described by settings and solves it.
func (r *Runner) Execute(ctx context.Context, settings Settings) (*Report, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.Discs > r.MaxDiscs {
		return nil, fmt.Errorf("%w: %d exceeds limit %d", domain.ErrInvalidDiscCount, settings.Discs, r.MaxDiscs)
	}

	puzzle, err := r.Solver.NewPuzzle(settings.Discs, settings.From)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Discs:     settings.Discs,
		Disc:      settings.Disc,
		From:      settings.From,
		To:        settings.To,
		ShowMoves: settings.ShowMoves,
		Start:     puzzle.Snapshot(),
	}

	if err := r.Solver.SolveFrom(ctx, puzzle, settings.Disc, settings.From, settings.To); err != nil {
		return nil, err
	}

	report.Moves = puzzle.Moves
	report.Final = puzzle.Snapshot()
	return report, nil
}
