// Package metrics provides Prometheus instrumentation for the policy request service.
package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "policy_request"

// Processing outcomes recorded by the orchestrator.
const (
	OutcomeValidated     = "validated"
	OutcomeRejected      = "rejected"
	OutcomeErrorRejected = "error_rejected"
	OutcomeSkipped       = "skipped"
	OutcomeFailed        = "failed"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ProcessingOutcomesTotal counts orchestrator runs by outcome.
	ProcessingOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "processing_outcomes_total",
			Help:      "Policy request processing runs by outcome.",
		},
		[]string{"outcome"},
	)

	// ProcessingDuration observes how long a processing run takes.
	ProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "processing_duration_seconds",
			Help:      "Policy request processing duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// StatusTransitionsTotal counts persisted transitions by target status.
	StatusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Persisted policy request status transitions by target status.",
		},
		[]string{"status"},
	)

	// FraudClassificationsTotal counts fraud analysis results by classification.
	FraudClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fraud_classifications_total",
			Help:      "Fraud analysis results by customer risk classification.",
		},
		[]string{"classification"},
	)

	// EventsPublishedTotal counts outbound lifecycle events by type and result.
	EventsPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Outbound lifecycle events by event type and result.",
		},
		[]string{"event_type", "result"},
	)

	// InboundEventsTotal counts consumed payment and underwriting events.
	InboundEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbound_events_total",
			Help:      "Consumed lifecycle events by topic, event type and result.",
		},
		[]string{"topic", "event_type", "result"},
	)

	// DispatcherQueueDepth tracks processing jobs waiting for a worker.
	DispatcherQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dispatcher_queue_depth",
			Help:      "Processing jobs waiting for a dispatcher worker.",
		},
	)

	// DispatcherOverflowTotal counts jobs that ran outside the pool because the queue was full.
	DispatcherOverflowTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatcher_overflow_total",
			Help:      "Processing jobs started outside the worker pool because the queue was full.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ProcessingOutcomesTotal,
		ProcessingDuration,
		StatusTransitionsTotal,
		FraudClassificationsTotal,
		EventsPublishedTotal,
		InboundEventsTotal,
		DispatcherQueueDepth,
		DispatcherOverflowTotal,
	)
}

// ObserveProcessing records one orchestrator run.
func ObserveProcessing(outcome string, started time.Time) {
	ProcessingOutcomesTotal.WithLabelValues(outcome).Inc()
	ProcessingDuration.Observe(time.Since(started).Seconds())
}

// Middleware records request count and latency per route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

// Handler returns the Prometheus metrics HTTP handler for /metrics endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
