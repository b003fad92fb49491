package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus observability primitives for the revenue service.
type Metrics struct {
	apiRequests     *prometheus.CounterVec
	apiDuration     *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	fallbackServed  *prometheus.CounterVec
	aggregationTime prometheus.Histogram
}

// NewMetrics registers and returns Prometheus metrics for telemetry.
func NewMetrics() *Metrics {
	m := &Metrics{
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "revenued_api_requests_total",
			Help: "Counts API requests by method, path, and status.",
		}, []string{"method", "path", "status"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "revenued_api_duration_seconds",
			Help:    "API request latency per method/path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "revenued_cache_lookups_total",
			Help: "Counts revenue cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		fallbackServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "revenued_fallback_served_total",
			Help: "Counts summaries served from the degraded fallback dataset.",
		}, []string{"property"}),
		aggregationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "revenued_aggregation_duration_seconds",
			Help:    "Latency of revenue aggregation queries.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	prometheus.MustRegister(
		m.apiRequests,
		m.apiDuration,
		m.cacheLookups,
		m.fallbackServed,
		m.aggregationTime,
	)
	return m
}

func (m *Metrics) ObserveRequest(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, path, status).Inc()
	m.apiDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) FallbackServed(propertyID string) {
	if m == nil {
		return
	}
	m.fallbackServed.WithLabelValues(propertyID).Inc()
}

func (m *Metrics) ObserveAggregation(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.aggregationTime.Observe(elapsed.Seconds())
}
