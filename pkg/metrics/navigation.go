package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NavigationMetrics records guard decisions and readiness wait times.
type NavigationMetrics struct {
	decisions     *prometheus.CounterVec
	readinessWait prometheus.Histogram
}

// NewNavigationMetrics registers the navigation metrics on the provided registerer.
func NewNavigationMetrics(reg prometheus.Registerer) *NavigationMetrics {
	if reg == nil {
		return &NavigationMetrics{}
	}
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navigation_decisions_total",
		Help: "Guard decisions by outcome.",
	}, []string{"outcome"})
	readinessWait := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "readiness_wait_seconds",
		Help:    "Time navigations spend waiting for auth readiness.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(decisions, readinessWait)
	return &NavigationMetrics{
		decisions:     decisions,
		readinessWait: readinessWait,
	}
}

// ObserveDecision increments the counter for the given outcome.
func (n *NavigationMetrics) ObserveDecision(outcome string) {
	if n == nil || n.decisions == nil {
		return
	}
	n.decisions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveReadinessWait records how long a navigation waited on the gate.
func (n *NavigationMetrics) ObserveReadinessWait(duration time.Duration) {
	if n == nil || n.readinessWait == nil {
		return
	}
	n.readinessWait.Observe(duration.Seconds())
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
