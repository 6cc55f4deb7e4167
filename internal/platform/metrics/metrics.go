package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

// Metrics holds the Prometheus instruments for the moderation queue process.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	QueueDepth    *prometheus.GaugeVec
	PendingByType *prometheus.GaugeVec

	OverdueItems          prometheus.Gauge
	HighEscalationItems   prometheus.Gauge
	ResolvedLast24h       prometheus.Gauge
	MeanResolutionSeconds prometheus.Gauge

	EventsPublished *prometheus.CounterVec
	PublishFailures *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus instruments on the default
// registry. Call once per process.
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_queue_http_requests_total",
				Help: "Total HTTP requests served by the moderation queue API",
			},
			[]string{"method", "route", "status"},
		),

		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moderation_queue_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		QueueDepth: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "moderation_queue_depth",
				Help: "Number of queue items per status",
			},
			[]string{"status"},
		),

		PendingByType: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "moderation_queue_pending_by_content_type",
				Help: "Number of pending items per content type",
			},
			[]string{"content_type"},
		),

		OverdueItems: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "moderation_queue_overdue_items",
				Help: "Open items older than the 24h review target",
			},
		),

		HighEscalationItems: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "moderation_queue_high_escalation_items",
				Help: "Items at escalation level 2 or above",
			},
		),

		ResolvedLast24h: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "moderation_queue_resolved_last_24h",
				Help: "Items resolved during the trailing 24 hours",
			},
		),

		MeanResolutionSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "moderation_queue_mean_resolution_seconds",
				Help: "Mean enqueue-to-resolution time over the trailing 7 days",
			},
		),

		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_queue_events_published_total",
				Help: "Queue lifecycle events published to the broker",
			},
			[]string{"topic"},
		),

		PublishFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_queue_event_publish_failures_total",
				Help: "Queue lifecycle events that failed to publish",
			},
			[]string{"topic"},
		),
	}
}

var gaugeStatuses = []entities.Status{
	entities.StatusPending,
	entities.StatusInReview,
	entities.StatusEscalated,
	entities.StatusAppealed,
	entities.StatusResolved,
}

// RecordQueueStats projects a stats snapshot onto the gauges. Statuses and
// content types absent from the snapshot are reset to zero so stale series do
// not linger between probe cycles.
func (m *Metrics) RecordQueueStats(stats ports.QueueStats) {
	for _, status := range gaugeStatuses {
		m.QueueDepth.WithLabelValues(string(status)).Set(float64(stats.StatusCounts[status]))
	}

	m.PendingByType.Reset()
	for contentType, count := range stats.PendingByContentType {
		m.PendingByType.WithLabelValues(string(contentType)).Set(float64(count))
	}

	m.OverdueItems.Set(float64(stats.Overdue))
	m.HighEscalationItems.Set(float64(stats.HighEscalation))
	m.ResolvedLast24h.Set(float64(stats.ResolvedLast24h))
	m.MeanResolutionSeconds.Set(stats.MeanResolutionSeconds)
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordEventPublished counts a successful broker publish.
func (m *Metrics) RecordEventPublished(topic string) {
	m.EventsPublished.WithLabelValues(topic).Inc()
}

// RecordPublishFailure counts a failed broker publish.
func (m *Metrics) RecordPublishFailure(topic string) {
	m.PublishFailures.WithLabelValues(topic).Inc()
}
