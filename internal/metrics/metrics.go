package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportsServed counts successful forecast responses by source.
	ReportsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finweather_reports_served_total",
		Help: "Weather reports served, labeled by provider source.",
	}, []string{"source"})

	// CityNotFound counts lookups for codes missing from the directory.
	CityNotFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finweather_city_not_found_total",
		Help: "Requests for city codes not in the directory.",
	})

	// UpstreamFailures counts provider calls that failed after retries.
	UpstreamFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finweather_upstream_failures_total",
		Help: "Forecast fetches that failed after retries.",
	})

	// UpstreamDuration tracks upstream request latency including retries.
	UpstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "finweather_upstream_request_duration_seconds",
		Help:    "Latency of upstream forecast requests in seconds.",
		Buckets: prometheus.DefBuckets,
	})

	// UpstreamUp reflects the outcome of the last reachability probe.
	UpstreamUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "finweather_upstream_up",
		Help: "1 if the last upstream probe succeeded, 0 otherwise.",
	})

	// MockReports counts forecasts produced by the mock generator.
	MockReports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finweather_mock_reports_generated_total",
		Help: "Synthetic forecasts produced by the mock generator.",
	})
)
