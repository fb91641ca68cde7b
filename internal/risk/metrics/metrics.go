package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks rule handler runs and the log scanner.
type Metrics struct {
	HandlerRuns     *prometheus.CounterVec
	HandlerDuration *prometheus.HistogramVec
	FlaggedAccounts *prometheus.CounterVec
	LogsScanned     prometheus.Counter
	LogsHit         prometheus.Counter
	RemindersSent   prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		HandlerRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_risk_handler_runs_total",
			Help: "Rule handler runs by handler and result",
		}, []string{"handler", "result"}),
		HandlerDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bulwark_risk_handler_duration_seconds",
			Help:    "Time spent validating one system",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
		FlaggedAccounts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_risk_flagged_accounts_total",
			Help: "Accounts flagged as risky by handler",
		}, []string{"handler"}),
		LogsScanned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_risk_logs_scanned_total",
			Help: "Command logs checked against regex rules",
		}),
		LogsHit: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_risk_logs_hit_total",
			Help: "Command logs that hit at least one regex rule atom",
		}),
		RemindersSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_risk_reminders_sent_total",
			Help: "Risk summary pushes sent",
		}),
	}
}

func (m *Metrics) ObserveRun(handler string, err error, d time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.HandlerRuns.WithLabelValues(handler, result).Inc()
	m.HandlerDuration.WithLabelValues(handler).Observe(d.Seconds())
}

func (m *Metrics) AddFlagged(handler string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.FlaggedAccounts.WithLabelValues(handler).Add(float64(n))
}

func (m *Metrics) AddScanned(scanned, hit int) {
	if m == nil {
		return
	}
	m.LogsScanned.Add(float64(scanned))
	m.LogsHit.Add(float64(hit))
}

func (m *Metrics) IncReminder() {
	if m == nil {
		return
	}
	m.RemindersSent.Inc()
}
