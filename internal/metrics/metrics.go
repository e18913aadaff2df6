package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the process wide metrics instance, registered with the default prometheus registry.
var Observer = MustRegister(New(), prometheus.DefaultRegisterer)

// Metrics records the training progress.
type Metrics struct {
	prometheus Prometheus
}

// New creates a new unregistered metrics instance.
func New() *Metrics {
	return &Metrics{
		prometheus: NewPrometheusMetrics(),
	}
}

// MustRegister registers the metrics collectors with the given registerer.
func MustRegister(m *Metrics, registerer prometheus.Registerer) *Metrics {
	registerer.MustRegister(m.prometheus.collectors()...)
	return m
}

// Iteration records a completed iteration for the given session.
func (m *Metrics) Iteration(session string, updates int, accuracy float64) {
	m.prometheus.Iterations.WithLabelValues(session).Inc()
	m.prometheus.Updates.WithLabelValues(session).Add(float64(updates))
	m.prometheus.Accuracy.WithLabelValues(session).Set(accuracy)
}

// Collectors exposes the underlying prometheus collectors.
func (m *Metrics) Collectors() Prometheus {
	return m.prometheus
}
