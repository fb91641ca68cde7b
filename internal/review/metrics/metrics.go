package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks review feed assembly and reviewer activity.
type Metrics struct {
	FeedBuilds      *prometheus.CounterVec
	FeedDuration    *prometheus.HistogramVec
	DroppedAccounts *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec
	Comments        *prometheus.CounterVec
	Preheated       *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		FeedBuilds: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_review_feed_builds_total",
			Help: "Review feeds assembled by feed and result",
		}, []string{"feed", "result"}),
		FeedDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bulwark_review_feed_duration_seconds",
			Help:    "Time spent assembling one review feed",
			Buckets: prometheus.DefBuckets,
		}, []string{"feed"}),
		DroppedAccounts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_review_feed_dropped_accounts_total",
			Help: "Accounts dropped from a feed because formatting failed",
		}, []string{"feed"}),
		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_review_feed_cache_lookups_total",
			Help: "Feed cache lookups by result",
		}, []string{"result"}),
		Comments: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_review_comments_total",
			Help: "Review comments written by review type and kind",
		}, []string{"review_type", "kind"}),
		Preheated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_review_preheat_tasks_total",
			Help: "Tasks whose feeds were preheated by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveFeed(feed string, start time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.FeedBuilds.WithLabelValues(feed, result).Inc()
	m.FeedDuration.WithLabelValues(feed).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncDropped(feed string) {
	if m == nil {
		return
	}
	m.DroppedAccounts.WithLabelValues(feed).Inc()
}

func (m *Metrics) IncCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) IncComment(reviewType, kind string) {
	if m == nil {
		return
	}
	m.Comments.WithLabelValues(reviewType, kind).Inc()
}

func (m *Metrics) IncPreheat(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Preheated.WithLabelValues(result).Inc()
}
