package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the notification outbox.
type Metrics struct {
	Enqueued   *prometheus.CounterVec
	Suppressed *prometheus.CounterVec
	Delivered  prometheus.Counter
	Failures   prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		Enqueued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_notify_enqueued_total",
			Help: "Push messages written to the outbox, by kind",
		}, []string{"kind"}),
		Suppressed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_notify_suppressed_total",
			Help: "One-off pushes skipped because they were already sent, by kind",
		}, []string{"kind"}),
		Delivered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_notify_delivered_total",
			Help: "Outbox messages handed to the sender",
		}),
		Failures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_notify_send_failures_total",
			Help: "Failed sender calls",
		}),
	}
}

func (m *Metrics) IncEnqueued(kind string) {
	if m == nil {
		return
	}
	m.Enqueued.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncSuppressed(kind string) {
	if m == nil {
		return
	}
	m.Suppressed.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncDelivered() {
	if m == nil {
		return
	}
	m.Delivered.Inc()
}

func (m *Metrics) IncFailure() {
	if m == nil {
		return
	}
	m.Failures.Inc()
}
