// Package metrics exposes theme cache activity and HTTP traffic as
// Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

// Metrics groups every collector registered by the resolution service.
type Metrics struct {
	CacheHitsTotal         *prometheus.CounterVec
	CacheMissesTotal       *prometheus.CounterVec
	CacheClearedTotal      *prometheus.CounterVec
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDurationSec *prometheus.HistogramVec
}

var _ theme.CacheObserver = (*Metrics)(nil)

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheHitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "themer_cache_hits_total",
			Help: "Total number of theme cache hits",
		}, []string{"theme", "cache"}),
		CacheMissesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "themer_cache_misses_total",
			Help: "Total number of theme cache misses",
		}, []string{"theme", "cache"}),
		CacheClearedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "themer_cache_cleared_entries_total",
			Help: "Total number of theme cache entries dropped by clears",
		}, []string{"theme", "cache"}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "themer_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"status", "route"}),
		HTTPRequestDurationSec: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "themer_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// CacheHit implements theme.CacheObserver.
func (m *Metrics) CacheHit(themeName, cache string) {
	m.CacheHitsTotal.WithLabelValues(themeName, cache).Inc()
}

// CacheMiss implements theme.CacheObserver.
func (m *Metrics) CacheMiss(themeName, cache string) {
	m.CacheMissesTotal.WithLabelValues(themeName, cache).Inc()
}

// CacheCleared implements theme.CacheObserver.
func (m *Metrics) CacheCleared(themeName, cache string, entries int) {
	m.CacheClearedTotal.WithLabelValues(themeName, cache).Add(float64(entries))
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(status, route).Inc()
	m.HTTPRequestDurationSec.WithLabelValues(route).Observe(seconds)
}
