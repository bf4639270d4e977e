// Package metrics defines every custom Prometheus collector of the community
// API. Collectors register with the default registry at package init through
// promauto and are exposed on GET /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "community"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP verb
//   - route: the matched route pattern (e.g. "/api/posts/:id"), never the raw path
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// IdempotencyRejectedTotal counts create requests refused because their
// Idempotency-Key was already used.
var IdempotencyRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_rejected_total",
		Help:      "Total number of requests rejected as duplicate submissions.",
	},
)

// ── Realtime metrics ──────────────────────────────────────────────────────────

// RealtimeClients tracks currently connected realtime clients.
var RealtimeClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "realtime_clients",
		Help:      "Number of connected realtime clients.",
	},
)

// BroadcastEventsTotal counts broadcast events by type.
var BroadcastEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_events_total",
		Help:      "Total number of events fanned out to realtime clients, by event type.",
	},
	[]string{"type"},
)

// BroadcastDroppedTotal counts per-client deliveries skipped because the
// client's send buffer was full.
var BroadcastDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_dropped_total",
		Help:      "Total number of per-client event deliveries dropped on a full buffer.",
	},
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, seconds float64) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

// Realtime feeds the realtime collectors from the broadcast hub.
type Realtime struct{}

func (Realtime) Connected(n int) {
	RealtimeClients.Set(float64(n))
}

func (Realtime) Broadcast(eventType string, dropped int) {
	BroadcastEventsTotal.WithLabelValues(eventType).Inc()
	if dropped > 0 {
		BroadcastDroppedTotal.Add(float64(dropped))
	}
}
