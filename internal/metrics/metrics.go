// Package metrics defines the Prometheus collectors used by the lookup
// pipeline and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes used as label values.
const (
	OutcomeRemote   = "remote"
	OutcomeFallback = "fallback"
	OutcomeNotFound = "not_found"
	OutcomeEmpty    = "empty_query"
)

// Metrics holds all Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	LookupsTotal         *prometheus.CounterVec
	LookupDuration       prometheus.Histogram
	RemoteFailuresTotal  prometheus.Counter
	HistoryWriteFailures prometheus.Counter
	AudioFailuresTotal   prometheus.Counter
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
}

// New creates all collectors and registers them on a private registry, so
// several instances can coexist (tests, multiple commands in one process).
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordlookup_lookups_total",
				Help: "Total lookups by outcome (remote, fallback, not_found, empty_query).",
			},
			[]string{"outcome"},
		),
		LookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordlookup_lookup_duration_seconds",
				Help:    "End-to-end lookup latency in seconds.",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		RemoteFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordlookup_remote_failures_total",
				Help: "Remote dictionary requests that failed or found nothing.",
			},
		),
		HistoryWriteFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordlookup_history_write_failures_total",
				Help: "Failed attempts to persist the recent-search list.",
			},
		),
		AudioFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordlookup_audio_failures_total",
				Help: "Failed pronunciation playbacks.",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordlookup_http_requests_total",
				Help: "Local UI HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordlookup_http_request_duration_seconds",
				Help:    "Local UI HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	m.registry.MustRegister(
		m.LookupsTotal,
		m.LookupDuration,
		m.RemoteFailuresTotal,
		m.HistoryWriteFailures,
		m.AudioFailuresTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// ObserveLookup records one finished lookup.
func (m *Metrics) ObserveLookup(outcome string, d time.Duration) {
	m.LookupsTotal.WithLabelValues(outcome).Inc()
	m.LookupDuration.Observe(d.Seconds())
}

// RemoteFailed counts a failed remote attempt.
func (m *Metrics) RemoteFailed() { m.RemoteFailuresTotal.Inc() }

// HistoryWriteFailed counts a failed history persist.
func (m *Metrics) HistoryWriteFailed() { m.HistoryWriteFailures.Inc() }

// AudioFailed counts a failed playback.
func (m *Metrics) AudioFailed() { m.AudioFailuresTotal.Inc() }

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Registry exposes the underlying registry (for tests and custom exporters).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns the Prometheus scrape HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
