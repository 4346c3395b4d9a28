// Package metrics defines the Prometheus collectors of the contours service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "contours"

// Metrics holds the Prometheus counters and histograms of the service.
type Metrics struct {
	Requests        *prometheus.CounterVec   // labels: route, code
	RequestDuration *prometheus.HistogramVec // labels: route
	StoreLoads      *prometheus.CounterVec   // labels: format, outcome={success,not_found,corrupt,unsupported,canceled,error}
}

// New creates and registers all metrics with the default Prometheus registry.
func New() *Metrics {
	m := NewForTesting()

	prometheus.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.StoreLoads,
	)

	return m
}

// NewForTesting creates unregistered metrics so tests can build as many as they need.
func NewForTesting() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route"}),
		StoreLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_loads_total",
			Help:      "Cluster store file loads by format and outcome.",
		}, []string{"format", "outcome"}),
	}
}
