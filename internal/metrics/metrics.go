// Package metrics provides Prometheus metrics for the shortlist service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

const namespace = "shortlist"

// Manager owns the service collectors and the registry they live in.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	collectionSaves   *prometheus.CounterVec
	collectionSize    *prometheus.GaugeVec
	storageFallbacks  *prometheus.CounterVec
	comparisonLatency prometheus.Histogram
}

// New registers all collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Manager {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Manager{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		collectionSaves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_saves_total",
			Help:      "Successful whole-collection writes.",
		}, []string{"collection"}),
		collectionSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_records",
			Help:      "Records in a collection as of its last save.",
		}, []string{"collection"}),
		storageFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_fallbacks_total",
			Help:      "Reads that found an undecodable collection and served the default seed.",
		}, []string{"collection"}),
		comparisonLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "comparison_duration_seconds",
			Help:      "Time to load both collections and build the ranked comparison.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		}),
	}
}

// ObserveSave is a store subscriber.
func (m *Manager) ObserveSave(evt store.SaveEvent) {
	m.collectionSaves.WithLabelValues(evt.Collection).Inc()
	m.collectionSize.WithLabelValues(evt.Collection).Set(float64(evt.Count))
}

func (m *Manager) StorageFallback(collection string) {
	m.storageFallbacks.WithLabelValues(collection).Inc()
}

func (m *Manager) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Manager) ObserveComparison(d time.Duration) {
	m.comparisonLatency.Observe(d.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
