package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks directory lookups and the profile cache.
type Metrics struct {
	CacheHits       *prometheus.CounterVec
	CacheMisses     prometheus.Counter
	DirectoryErrors *prometheus.CounterVec
	BreakerOpen     prometheus.Gauge
	ProfileFailures prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_identity_cache_hits_total",
			Help: "Profile lookups served from cache, by tier",
		}, []string{"tier"}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_identity_cache_misses_total",
			Help: "Profile lookups that reached the directory",
		}),
		DirectoryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_identity_directory_errors_total",
			Help: "Failed directory calls by operation",
		}, []string{"op"}),
		BreakerOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bulwark_identity_directory_breaker_open",
			Help: "1 while the directory circuit breaker is open",
		}),
		ProfileFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_identity_profile_batch_failures_total",
			Help: "Profile batches that failed and degraded to empty profiles",
		}),
	}
}

func (m *Metrics) IncCacheHit(tier string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(tier).Inc()
}

func (m *Metrics) AddCacheMisses(n int) {
	if m == nil || n == 0 {
		return
	}
	m.CacheMisses.Add(float64(n))
}

func (m *Metrics) IncDirectoryError(op string) {
	if m == nil {
		return
	}
	m.DirectoryErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) SetBreakerOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.BreakerOpen.Set(1)
		return
	}
	m.BreakerOpen.Set(0)
}

func (m *Metrics) IncProfileFailure() {
	if m == nil {
		return
	}
	m.ProfileFailures.Inc()
}
