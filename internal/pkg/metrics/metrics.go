package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests received",
	},
	[]string{"route", "status", "method"},
)

var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"route", "method"},
)

var HTTPRateLimitRejectionsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "http_rate_limit_rejections_total",
		Help: "Total number of HTTP requests rejected due to rate limiting",
	},
)

var FollowUpsDispatchedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "followups_dispatched_total",
		Help: "Scheduled follow-ups processed by the dispatcher, by outcome",
	},
	[]string{"outcome"},
)

var DispatchRunDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "followup_dispatch_run_duration_seconds",
		Help:    "Duration of one dispatcher run",
		Buckets: prometheus.DefBuckets,
	},
)

var WebhookEventsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "billing_webhook_events_total",
		Help: "Billing webhook deliveries, by event type and result",
	},
	[]string{"type", "result"},
)

var CommissionsCreditedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ambassador_commissions_credited_total",
		Help: "Ambassador commissions credited",
	},
)

var XPAwardedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "xp_awarded_total",
		Help: "XP ledger entries appended, by action",
	},
	[]string{"action"},
)

var EmailJobsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "email_jobs_total",
		Help: "Email outbox jobs handled by the relay, by result",
	},
	[]string{"result"},
)

var KafkaPublishFailureTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_publish_failure_total",
		Help: "Failed activity event publishes",
	},
	[]string{"topic"},
)

var RealtimeSubscribers = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "realtime_subscribers",
		Help: "Local realtime subscribers, by topic",
	},
	[]string{"topic"},
)

var registerOnce sync.Once

// Register adds every collector to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			HTTPRateLimitRejectionsTotal,
			FollowUpsDispatchedTotal,
			DispatchRunDuration,
			WebhookEventsTotal,
			CommissionsCreditedTotal,
			XPAwardedTotal,
			EmailJobsTotal,
			KafkaPublishFailureTotal,
			RealtimeSubscribers,
		)
	})
}
