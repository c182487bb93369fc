package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

const (
	resultSuccess     = "success"
	resultClientError = "client_error"
	resultError       = "error"
)

// Metrics holds the Prometheus collectors of the service. Each Metrics has its own registry.
type Metrics struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	bytesTotal        *prometheus.CounterVec
	tableCacheTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "base2n_operations_total",
				Help: "Total number of encode, decode and table operations",
			},
			[]string{"op", "result"},
		),

		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "base2n_operation_duration_seconds",
				Help:    "Duration of encode and decode operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),

		bytesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "base2n_bytes_total",
				Help: "Total number of bytes received by the encode and decode operations",
			},
			[]string{"op"},
		),

		tableCacheTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "base2n_table_cache_total",
				Help: "Table cache lookups by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Handler exposes the metrics in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordOperation counts a finished operation
func (m *Metrics) RecordOperation(op, result string, size int, start time.Time) {
	m.operationsTotal.WithLabelValues(op, result).Inc()
	m.operationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if size > 0 {
		m.bytesTotal.WithLabelValues(op).Add(float64(size))
	}
}

// RecordCache counts a table cache hit or miss
func (m *Metrics) RecordCache(hit bool) {
	if hit {
		m.tableCacheTotal.WithLabelValues("hit").Inc()
	} else {
		m.tableCacheTotal.WithLabelValues("miss").Inc()
	}
}
