package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reception"

var (
	once sync.Once

	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hotelapi_requests_total",
			Help:      "Count of hotel API calls by action and outcome.",
		},
		[]string{"action", "outcome"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "hotelapi_request_duration_seconds",
			Help:      "Latency of hotel API calls.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 5, 10},
		},
		[]string{"action"},
	)

	paymentFlows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_flow_transitions_total",
			Help:      "Count of payment flow transitions by target state.",
		},
		[]string{"state"},
	)

	syncFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "billing_sync_fetch_total",
			Help:      "Count of billing stats fetches by trigger and outcome.",
		},
		[]string{"trigger", "outcome"},
	)

	websocketSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_sessions",
			Help:      "Connected dashboard websocket sessions.",
		},
	)

	notificationsPushed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_pushed_total",
			Help:      "Count of notifications pushed to staff feeds by type.",
		},
		[]string{"type"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			upstreamRequests,
			upstreamDuration,
			paymentFlows,
			syncFetches,
			websocketSessions,
			notificationsPushed,
		)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveUpstream(action, outcome string, seconds float64) {
	upstreamRequests.WithLabelValues(action, outcome).Inc()
	upstreamDuration.WithLabelValues(action).Observe(seconds)
}

func IncPaymentTransition(state string) {
	paymentFlows.WithLabelValues(state).Inc()
}

func IncSyncFetch(trigger, outcome string) {
	syncFetches.WithLabelValues(trigger, outcome).Inc()
}

func SetWebsocketSessions(count int) {
	websocketSessions.Set(float64(count))
}

func IncNotificationPushed(notificationType string) {
	notificationsPushed.WithLabelValues(notificationType).Inc()
}
