package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GatewayMetrics records what the gateway observes: its own responses
// and the backend round trips it performs.
type GatewayMetrics interface {
	IncRequest(route string, status int)
	IncUnauthorized(route string)
	ObserveBackend(method, path string, status int, elapsed time.Duration)
}

type gatewayMetrics struct {
	requests     *prometheus.CounterVec
	unauthorized *prometheus.CounterVec
	backendCalls *prometheus.CounterVec
	backendTime  *prometheus.HistogramVec
}

// NewGatewayMetrics registers the gateway metric set on registry.
func NewGatewayMetrics(registry *prometheus.Registry) GatewayMetrics {
	requests := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "The total number of gateway responses by route and status",
		},
		[]string{"route", "status"},
	)

	unauthorized := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_unauthorized_total",
			Help: "The total number of requests rejected before any backend call",
		},
		[]string{"route"},
	)

	backendCalls := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_backend_calls_total",
			Help: "The total number of backend calls by method, path and relayed status",
		},
		[]string{"method", "path", "status"},
	)

	backendTime := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_backend_duration_seconds",
			Help:    "Backend round-trip latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	return &gatewayMetrics{
		requests:     requests,
		unauthorized: unauthorized,
		backendCalls: backendCalls,
		backendTime:  backendTime,
	}
}

func (m *gatewayMetrics) IncRequest(route string, status int) {
	m.requests.WithLabelValues(route, statusLabel(status)).Inc()
}

func (m *gatewayMetrics) IncUnauthorized(route string) {
	m.unauthorized.WithLabelValues(route).Inc()
}

func (m *gatewayMetrics) ObserveBackend(method, path string, status int, elapsed time.Duration) {
	m.backendCalls.WithLabelValues(method, path, statusLabel(status)).Inc()
	m.backendTime.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Nop returns a metrics sink that records nothing, for tests.
func Nop() GatewayMetrics {
	return nopMetrics{}
}

type nopMetrics struct{}

func (nopMetrics) IncRequest(string, int)                            {}
func (nopMetrics) IncUnauthorized(string)                            {}
func (nopMetrics) ObserveBackend(string, string, int, time.Duration) {}
