// Package metrics holds the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the counters exported at /metrics.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RateFetchesTotal       prometheus.Counter
	RateFetchFailuresTotal prometheus.Counter
	RateCacheHitsTotal     prometheus.Counter
	RateFallbacksTotal     prometheus.Counter
	ConversionsTotal       prometheus.Counter
}

// NewMetrics registers all collectors on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsFor(prometheus.DefaultRegisterer)
}

// NewMetricsFor registers all collectors on reg. Tests pass a fresh registry
// so repeated construction does not panic on duplicate registration.
func NewMetricsFor(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		RateFetchesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_fetches_total",
				Help: "Total number of upstream exchange rate fetches",
			},
		),

		RateFetchFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_fetch_failures_total",
				Help: "Total number of failed upstream exchange rate fetches",
			},
		),

		RateCacheHitsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_cache_hits_total",
				Help: "Total number of exchange rate requests served from the daily cache",
			},
		),

		RateFallbacksTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_fallbacks_total",
				Help: "Total number of exchange rate requests served from the built-in fallback table",
			},
		),

		ConversionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total number of currency conversion requests",
			},
		),
	}
}
