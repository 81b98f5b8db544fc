package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Decisions  *prometheus.CounterVec
	Fallbacks  *prometheus.CounterVec
	Violations *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gto",
				Name:      "decisions",
			}, []string{"street", "action"}),
		Fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gto",
				Name:      "range_fallbacks",
			}, []string{"position", "class"}),
		Violations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gto",
				Name:      "legality_violations",
			}, []string{"from", "to"}),
	}
}
