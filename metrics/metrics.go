// Package metrics exposes Prometheus collectors describing sort runs:
// how many sorts ran and with what outcome, how many comparisons they
// needed and how long they took.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrAlreadyRegistered indicates the registry already holds sort collectors.
var ErrAlreadyRegistered = errors.New("sort metrics already registered")

// Outcome labels for sorts_total.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Sample describes one completed sort.
type Sample struct {
	Algorithm   string
	Workload    string
	Comparisons int
	Duration    time.Duration
	Failed      bool
}

// Metrics holds the sort collectors.
type Metrics struct {
	sorts       *prometheus.CounterVec   // Sorts by algorithm, workload and outcome.
	comparisons *prometheus.HistogramVec // Comparator invocations per sort.
	duration    *prometheus.HistogramVec // Wall time per sort.
}

// NewWithRegistry creates the collectors and registers them with registry.
//
// Parameters:
//   - registry: Prometheus registerer to use for metric registration.
//
// Returns:
//   - (*Metrics, error): Metrics handler, or an error if any collector is already registered.
func NewWithRegistry(registry prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		sorts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sorts_total",
			Help: "Number of sorts performed",
		}, []string{"algorithm", "workload", "outcome"}),
		comparisons: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sort_comparisons",
			Help:    "Comparator invocations needed by a single sort",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm", "workload"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sort_duration_seconds",
			Help:    "Wall time of a single sort",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
	}

	for _, c := range []prometheus.Collector{m.sorts, m.comparisons, m.duration} {
		if err := registry.Register(c); err != nil {
			alreadyRegisteredError := &prometheus.AlreadyRegisteredError{}
			if errors.As(err, alreadyRegisteredError) {
				return nil, fmt.Errorf("%w: %w", ErrAlreadyRegistered, err)
			}

			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return m, nil
}

// Observe records one sort.
func (m *Metrics) Observe(s Sample) {
	outcome := OutcomeOK
	if s.Failed {
		outcome = OutcomeFailed
	}

	m.sorts.WithLabelValues(s.Algorithm, s.Workload, outcome).Inc()
	m.comparisons.WithLabelValues(s.Algorithm, s.Workload).Observe(float64(s.Comparisons))
	m.duration.WithLabelValues(s.Algorithm).Observe(s.Duration.Seconds())
}
