package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported by the service.
type Metrics struct {
	// HTTP traffic by route pattern, method and status class
	RequestDuration *prometheus.HistogramVec

	// Registry writes by operation and outcome
	Mutations *prometheus.CounterVec

	classify func(error) string
}

// New registers all collectors on reg. Each registry can hold one Metrics.
// classify turns a failed mutation into a low-cardinality outcome label.
func New(reg prometheus.Registerer, classify func(error) string) *Metrics {
	factory := promauto.With(reg)
	if classify == nil {
		classify = func(error) string { return "error" }
	}

	return &Metrics{
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "team_registry_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route, method and status",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"route", "method", "status"}),

		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "team_registry_mutations_total",
			Help: "Total registry mutations by operation and outcome",
		}, []string{"operation", "outcome"}),

		classify: classify,
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, method, statusClass(status)).Observe(d.Seconds())
}

// RecordMutation counts a registry write. The outcome label is "ok" on
// success, otherwise the classifier's label for err.
func (m *Metrics) RecordMutation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = m.classify(err)
	}
	m.Mutations.WithLabelValues(operation, outcome).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
