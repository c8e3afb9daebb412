package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request latency by method, route and status.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taskhub",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// SSEConnections is the number of currently open notification streams.
	SSEConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "taskhub",
		Name:      "sse_open_streams",
		Help:      "Number of currently open SSE notification streams.",
	})

	// NotificationsDispatched counts persisted notification dispatches.
	NotificationsDispatched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taskhub",
		Name:      "notifications_dispatched_total",
		Help:      "Total number of notifications persisted and fanned out.",
	})

	// NotificationPushFailures counts per-recipient stream write failures.
	NotificationPushFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taskhub",
		Name:      "notification_push_failures_total",
		Help:      "Total number of failed live pushes to individual streams.",
	})
)
