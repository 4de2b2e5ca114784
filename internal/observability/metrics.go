package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the delivery pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	notificationsSent   *prometheus.CounterVec
	engagementEvents    *prometheus.CounterVec
	campaignRecipients  *prometheus.CounterVec
	campaignBatchTiming prometheus.Histogram
	httpRequests        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Notification send attempts by channel and outcome",
		}, []string{"channel", "outcome"}),
		engagementEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_events_total",
			Help: "Engagement events recorded by type",
		}, []string{"event_type"}),
		campaignRecipients: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaign_recipients_total",
			Help: "Campaign recipients processed by outcome",
		}, []string{"outcome"}),
		campaignBatchTiming: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "campaign_batch_duration_seconds",
			Help:    "Time to send one campaign batch",
			Buckets: prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "path", "status"}),
	}

	reg.MustRegister(
		m.notificationsSent,
		m.engagementEvents,
		m.campaignRecipients,
		m.campaignBatchTiming,
		m.httpRequests,
	)
	return m
}

// ObserveNotification counts a single provider send.
func (m *Metrics) ObserveNotification(channel string, success bool) {
	if m == nil {
		return
	}
	m.notificationsSent.WithLabelValues(channel, outcome(success)).Inc()
}

// ObserveEngagement counts a recorded engagement event.
func (m *Metrics) ObserveEngagement(eventType string) {
	if m == nil {
		return
	}
	m.engagementEvents.WithLabelValues(eventType).Inc()
}

// ObserveCampaignBatch records one finished batch.
func (m *Metrics) ObserveCampaignBatch(duration time.Duration, sent, failed int) {
	if m == nil {
		return
	}
	m.campaignBatchTiming.Observe(duration.Seconds())
	m.campaignRecipients.WithLabelValues("sent").Add(float64(sent))
	m.campaignRecipients.WithLabelValues("failed").Add(float64(failed))
}

// ObserveHTTPRequest counts a served request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
