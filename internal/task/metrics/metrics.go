package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks task lifecycle changes.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Rejected    *prometheus.CounterVec
	Created     prometheus.Counter
	Recomputed  *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_task_transitions_total",
			Help: "Applied task status transitions",
		}, []string{"from", "to"}),
		Rejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_task_transitions_rejected_total",
			Help: "Rejected task status transitions by reason",
		}, []string{"reason"}),
		Created: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_task_created_total",
			Help: "Tasks minted by the generator",
		}),
		Recomputed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_task_review_status_recomputed_total",
			Help: "Derived status recomputations by resulting status",
		}, []string{"status"}),
	}
}

func (m *Metrics) IncTransition(from, to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) IncRejected(reason string) {
	if m == nil {
		return
	}
	m.Rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncCreated() {
	if m == nil {
		return
	}
	m.Created.Inc()
}

func (m *Metrics) IncRecomputed(status string) {
	if m == nil {
		return
	}
	m.Recomputed.WithLabelValues(status).Inc()
}
