package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Decisions,
		Observer.prometheus.Fallbacks,
		Observer.prometheus.Violations,
	)
}

// Metrics is the process-wide counter sink. Exposure is the embedding
// application's concern; this package only accumulates.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

func (m *Metrics) IncrementDecision(street, action string) {
	m.prometheus.Decisions.WithLabelValues(street, action).Inc()
}

func (m *Metrics) IncrementFallback(position, class string) {
	m.prometheus.Fallbacks.WithLabelValues(position, class).Inc()
}

func (m *Metrics) IncrementViolation(from, to string) {
	m.prometheus.Violations.WithLabelValues(from, to).Inc()
}
