package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the retrieval
// client.
type Metrics struct {
	SOSRequests        *prometheus.CounterVec   // labels: operation={GetObservation,GetFeatureOfInterest}, outcome={success,error}
	SOSRequestDuration *prometheus.HistogramVec // labels: operation
	EmptyResults       prometheus.Counter
	TimeParseFailures  prometheus.Counter
}

// NewMetrics creates and registers all client metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SOSRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ngwmn",
			Name:      "sos_requests_total",
			Help:      "SOS requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		SOSRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ngwmn",
			Name:      "sos_request_duration_seconds",
			Help:      "SOS request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
		EmptyResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ngwmn",
			Name:      "empty_results_total",
			Help:      "GetObservation responses that carried no observation rows.",
		}),
		TimeParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ngwmn",
			Name:      "time_parse_failures_total",
			Help:      "Batches whose observation timestamps failed to parse.",
		}),
	}

	prometheus.MustRegister(
		m.SOSRequests,
		m.SOSRequestDuration,
		m.EmptyResults,
		m.TimeParseFailures,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SOSRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "ngwmn", Name: "sos_requests_total"}, []string{"operation", "outcome"}),
		SOSRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "ngwmn", Name: "sos_request_duration_seconds"}, []string{"operation"}),
		EmptyResults:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ngwmn", Name: "empty_results_total"}),
		TimeParseFailures:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ngwmn", Name: "time_parse_failures_total"}),
	}
}
