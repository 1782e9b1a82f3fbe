package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Export outcomes recorded on the exports_total counter.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Collector owns every Prometheus metric the service registers. A nil
// *Collector is a valid no-op, so callers never need to guard metric
// recording behind an enabled check.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge

	exportsTotal   *prometheus.CounterVec
	exportDuration *prometheus.HistogramVec

	storeRecords *prometheus.GaugeVec
}

// NewCollector creates a collector and registers its metrics. If
// registry is nil a fresh registry is used, which keeps tests isolated
// from each other.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,

		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onebeat",
			Subsystem: "scout",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "onebeat",
			Subsystem: "scout",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"method", "route"}),

		requestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "onebeat",
			Subsystem: "scout",
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being handled.",
		}),

		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onebeat",
			Subsystem: "scout",
			Name:      "exports_total",
			Help:      "Export operations by format, team, and outcome.",
		}, []string{"format", "team", "outcome"}),

		exportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "onebeat",
			Subsystem: "scout",
			Name:      "export_duration_seconds",
			Help:      "Export encoding latency by format. PDF renders dominate the upper buckets.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
		}, []string{"format"}),

		storeRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "onebeat",
			Subsystem: "scout",
			Name:      "store_records",
			Help:      "Records currently held per collection.",
		}, []string{"collection"}),
	}

	registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.requestsInFlight,
		c.exportsTotal,
		c.exportDuration,
		c.storeRecords,
	)

	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, route, status string, duration time.Duration) {
	if c == nil {
		return
	}
	c.requestsTotal.WithLabelValues(method, route, status).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RequestStarted marks a request in flight; the returned function marks
// it done.
func (c *Collector) RequestStarted() func() {
	if c == nil {
		return func() {}
	}
	c.requestsInFlight.Inc()
	return c.requestsInFlight.Dec
}

// RecordExport records one export operation.
func (c *Collector) RecordExport(format, team, outcome string, duration time.Duration) {
	if c == nil {
		return
	}
	if team == "" {
		team = "complete"
	}
	c.exportsTotal.WithLabelValues(format, team, outcome).Inc()
	c.exportDuration.WithLabelValues(format).Observe(duration.Seconds())
}

// SetStoreCounts updates the per-collection record gauges.
func (c *Collector) SetStoreCounts(competitors, capabilities, segments int) {
	if c == nil {
		return
	}
	c.storeRecords.WithLabelValues("competitors").Set(float64(competitors))
	c.storeRecords.WithLabelValues("capabilities").Set(float64(capabilities))
	c.storeRecords.WithLabelValues("market_segments").Set(float64(segments))
}
