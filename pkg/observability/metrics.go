package observability

import (
	"context"
	"errors"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Invocation status label values.
const (
	StatusOK        = "ok"
	StatusDismissed = "dismissed"
	StatusSpawn     = "spawn_error"
	StatusIO        = "io_error"
	StatusAbnormal  = "abnormal_exit"
)

// Metrics holds the Prometheus collectors fed by lifecycle events.
type Metrics struct {
	Invocations *prometheus.CounterVec
	Duration    prometheus.Histogram
	Outcomes    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rofiflow_invocations_total",
				Help: "Total number of selector invocations",
			},
			[]string{"status"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rofiflow_invocation_duration_seconds",
				Help:    "Time the selector stayed open",
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 300},
			},
		),
		Outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rofiflow_outcomes_total",
				Help: "Total number of classified answers",
			},
			[]string{"component", "kind"},
		),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Invocations, m.Duration, m.Outcomes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInvoke: func(ctx context.Context, e *domain.InvokeEvent) {
			m.Invocations.WithLabelValues(InvocationStatus(e)).Inc()
			m.Duration.Observe(e.Duration.Seconds())
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			m.Outcomes.WithLabelValues(e.Component, string(e.Outcome.Kind())).Inc()
		},
	}
}

// InvocationStatus names the result of an invocation for labelling.
func InvocationStatus(e *domain.InvokeEvent) string {
	switch {
	case e.Err == nil && e.Answer.ExitCode == 1:
		return StatusDismissed
	case e.Err == nil:
		return StatusOK
	case errors.Is(e.Err, domain.ErrSpawn):
		return StatusSpawn
	case errors.Is(e.Err, domain.ErrCommunicate):
		return StatusIO
	default:
		return StatusAbnormal
	}
}
