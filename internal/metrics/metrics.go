package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	eventsIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_ingested_total",
			Help: "Total number of events appended to the in-memory log",
		},
		[]string{"category"},
	)

	eventsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_rejected_total",
			Help: "Total number of events rejected at ingestion validation",
		},
		[]string{"reason"},
	)

	eventsForwardedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_forwarded_total",
			Help: "Total number of events forwarded to the sink queue",
		},
	)

	forwardFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_forward_failures_total",
			Help: "Total number of failed sink-queue forwards (swallowed)",
		},
	)

	reportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_report_duration_seconds",
			Help:    "Dashboard report computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"report"},
	)

	consumerBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_consumer_batches_total",
			Help: "Total number of consumer batch writes by outcome",
		},
		[]string{"outcome"},
	)

	consumerDuplicatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_consumer_duplicate_events_total",
			Help: "Total number of events dropped by the idempotency filter",
		},
	)
)

// EventIngested records a successful append.
func EventIngested(category string) {
	eventsIngestedTotal.WithLabelValues(category).Inc()
}

// EventRejected records a validation rejection.
func EventRejected(reason string) {
	eventsRejectedTotal.WithLabelValues(reason).Inc()
}

// EventForwarded records a successful sink-queue publish.
func EventForwarded() {
	eventsForwardedTotal.Inc()
}

// ForwardFailed records a swallowed sink-queue publish failure.
func ForwardFailed() {
	forwardFailuresTotal.Inc()
}

// ObserveReport records the duration of one report computation.
func ObserveReport(report string, start time.Time) {
	reportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

// BatchWritten records a consumer batch write outcome ("ok" or "error").
func BatchWritten(outcome string) {
	consumerBatchesTotal.WithLabelValues(outcome).Inc()
}

// DuplicateDropped records an event dropped by the idempotency filter.
func DuplicateDropped() {
	consumerDuplicatesTotal.Inc()
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
