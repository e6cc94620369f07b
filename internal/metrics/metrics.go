// Package metrics exposes prometheus collectors for projection traffic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "lifeplan_"

	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics owns its registry so several instances can live in one process.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	projections   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	cacheLookups  *prometheus.CounterVec
	horizonMonths prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		projections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "projections_total",
				Help: "Total projection requests by outcome",
			},
			[]string{"outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "projection_latency_seconds",
				Help:    "Projection latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_lookups_total",
				Help: "Projection cache lookups by result",
			},
			[]string{"result"},
		),
		horizonMonths: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "projection_horizon_months",
				Help:    "Number of months stepped per projection",
				Buckets: []float64{12, 60, 120, 240, 480, 720, 960, 1200},
			},
		),
	}
	m.registry.MustRegister(
		m.projections,
		m.latency,
		m.cacheLookups,
		m.horizonMonths,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) ObserveProjection(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.projections.WithLabelValues(outcome).Inc()
	m.latency.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveHorizon(months int) {
	if m == nil {
		return
	}
	m.horizonMonths.Observe(float64(months))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
