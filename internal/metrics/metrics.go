package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhookEvents counts gateway webhook deliveries by outcome.
	// Outcomes: accepted, invalid_signature.
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_webhook_events_total",
			Help: "The total number of payment gateway webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	// PaymentsConfirmed counts payments that reached a terminal status,
	// labeled by payment type and final status.
	PaymentsConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_payments_total",
			Help: "The total number of payments that reached a terminal status",
		},
		[]string{"type", "status"},
	)

	// SweepProcessed counts subscriptions handled by the scheduled sweeps,
	// labeled by sweep name and result.
	SweepProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_sweep_processed_total",
			Help: "The total number of subscriptions processed by scheduled sweeps",
		},
		[]string{"sweep", "result"},
	)

	// SweepErrors counts per-item failures inside the scheduled sweeps.
	SweepErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_sweep_errors_total",
			Help: "The total number of per-item errors inside scheduled sweeps",
		},
		[]string{"sweep"},
	)

	// SweepDuration observes how long a full sweep pass takes.
	SweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "subscription_sweep_duration_seconds",
			Help:    "Duration of a full scheduled sweep pass",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"sweep"},
	)

	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of outbound payment gateway requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	gatewayRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "The total number of outbound payment gateway requests",
		},
		[]string{"method", "path", "status"},
	)

	gatewayRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_request_errors_total",
			Help: "The total number of failed outbound payment gateway requests",
		},
		[]string{"method", "path"},
	)
)

// GatewayCollector feeds the HTTP client's request metrics into the
// process-wide Prometheus registry.
type GatewayCollector struct{}

func NewGatewayCollector() *GatewayCollector {
	return &GatewayCollector{}
}

func (c *GatewayCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	gatewayRequestDuration.WithLabelValues(method, path, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

func (c *GatewayCollector) RecordRequestCount(method, path string, statusCode int) {
	gatewayRequestCount.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

func (c *GatewayCollector) RecordRequestError(method, path string) {
	gatewayRequestErrors.WithLabelValues(method, path).Inc()
}
