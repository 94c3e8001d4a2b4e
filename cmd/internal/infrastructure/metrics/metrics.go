package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	SearchOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_operation_duration_seconds",
			Help:    "Duration of search, filter and suggestion operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"}, // text, tags, dates, suggest, completions
	)

	SuggestionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_failures_total",
			Help: "Suggestion lookups that failed and were answered with an empty result",
		},
		[]string{"operation"},
	)
)

// ObserveSearch records how long the named operation took since start.
func ObserveSearch(operation string, start time.Time) {
	SearchOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
