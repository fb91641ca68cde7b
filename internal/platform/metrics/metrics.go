package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds process level collectors shared by the binaries.
type Metrics struct {
	JobRuns     *prometheus.CounterVec
	JobDuration *prometheus.HistogramVec
}

// New creates and registers the shared metrics.
func New() *Metrics {
	return &Metrics{
		JobRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bulwark_job_runs_total",
			Help: "Batch job runs by job name and outcome",
		}, []string{"job", "outcome"}),
		JobDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bulwark_job_duration_seconds",
			Help:    "Batch job duration by job name",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
		}, []string{"job"}),
	}
}

// ObserveJob records one batch job run.
func (m *Metrics) ObserveJob(job string, seconds float64, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.JobRuns.WithLabelValues(job, outcome).Inc()
	m.JobDuration.WithLabelValues(job).Observe(seconds)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
