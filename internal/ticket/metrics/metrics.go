package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks deploy verification verdicts.
type Metrics struct {
	Verdicts       *prometheus.CounterVec
	DeploysUpdated prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_ticket_verdicts_total",
			Help: "Commit verdicts by reason, empty reason is compliant",
		}, []string{"reason"}),
		DeploysUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bulwark_ticket_deploys_updated_total",
			Help: "Deploy records rewritten with a verdict",
		}),
	}
}

func (m *Metrics) IncVerdict(reason string) {
	if m == nil {
		return
	}
	m.Verdicts.WithLabelValues(reason).Inc()
}

func (m *Metrics) AddUpdated(n int) {
	if m == nil {
		return
	}
	m.DeploysUpdated.Add(float64(n))
}
