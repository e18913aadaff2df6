package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "perceptron"

// Prometheus holds the prometheus collectors for the training sessions.
type Prometheus struct {
	Iterations *prometheus.CounterVec
	Updates    *prometheus.CounterVec
	Accuracy   *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the training collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "iterations_total",
				Help:      "training iterations over the point set",
			}, []string{"session"}),
		Updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "updates_total",
				Help:      "weight updates caused by a wrong guess",
			}, []string{"session"}),
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accuracy",
				Help:      "fraction of correctly classified points in the last iteration",
			}, []string{"session"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Iterations, p.Updates, p.Accuracy}
}
