package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "hanoi"

// Metrics holds the solver collectors.
type Metrics struct {
	MovesByDisc   *prometheus.CounterVec
	MovesByRod    *prometheus.CounterVec
	RejectedMoves *prometheus.CounterVec
	Solves        *prometheus.CounterVec
	SolveDuration prometheus.Histogram
	SolveMoves    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		MovesByDisc: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disc_moves_total",
			Help:      "Total number of applied moves by disc.",
		}, []string{"disc"}),
		MovesByRod: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rod_moves_total",
			Help:      "Total number of applied moves by source and destination rod.",
		}, []string{"from", "to"}),
		RejectedMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_moves_total",
			Help:      "Total number of rejected moves by reason.",
		}, []string{"reason"}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Total number of finished solves by outcome.",
		}, []string{"outcome"}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Duration of recursive solves.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 7),
		}),
		SolveMoves: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_moves",
			Help:      "Number of moves produced per solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.MovesByDisc, m.MovesByRod, m.RejectedMoves, m.Solves, m.SolveDuration, m.SolveMoves} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMove: func(ctx context.Context, e *domain.MoveEvent) {
			m.MovesByDisc.WithLabelValues(strconv.Itoa(int(e.Disc))).Inc()
			m.MovesByRod.WithLabelValues(e.From.String(), e.To.String()).Inc()
		},
		OnMoveReject: func(ctx context.Context, e *domain.MoveEvent) {
			m.RejectedMoves.WithLabelValues(RejectReason(e.Err)).Inc()
		},
		OnSolveEnd: func(ctx context.Context, e *domain.SolveEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = "error"
			}
			m.Solves.WithLabelValues(outcome).Inc()
			m.SolveDuration.Observe(e.Duration.Seconds())
			m.SolveMoves.Observe(float64(e.Moves))
		},
	}
}

// RejectReason maps a move error to a metric label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRod):
		return "invalid_rod"
	case errors.Is(err, domain.ErrEmptySource):
		return "empty_source"
	case errors.Is(err, domain.ErrIllegalStacking):
		return "illegal_stacking"
	}
	return "other"
}

// WriteText writes every metric gathered by g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
