// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal tracks served requests by route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verity",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestDuration tracks request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "verity",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// GatewayAttemptsTotal tracks every provider call made by the extraction gateway
	GatewayAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verity",
			Subsystem: "gateway",
			Name:      "attempts_total",
			Help:      "Total number of extraction provider attempts by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	// ExtractionFallbacksTotal tracks extractors that substituted their declared default
	ExtractionFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verity",
			Subsystem: "extraction",
			Name:      "fallbacks_total",
			Help:      "Total number of extraction results replaced by a default",
		},
		[]string{"extractor"},
	)

	// IngestionsTotal tracks ingested transactions by source and outcome
	IngestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verity",
			Subsystem: "ingestion",
			Name:      "transactions_total",
			Help:      "Total number of ingestion attempts by source and outcome",
		},
		[]string{"source", "outcome"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
