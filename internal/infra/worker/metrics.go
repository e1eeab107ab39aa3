package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks job runs.
//
//   - worker_job_runs_total{job,status}: runs by outcome (success, failure)
//   - worker_job_duration_seconds{job}: run duration
//   - worker_job_last_success_timestamp{job}: Unix time of the last successful run
type Metrics struct {
	JobRunsTotal        *prometheus.CounterVec
	JobDurationSeconds  *prometheus.HistogramVec
	JobLastSuccessStamp *prometheus.GaugeVec
}

// NewMetrics registers the job metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		JobRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_job_runs_total",
			Help: "Total number of job runs by job and status (success/failure)",
		}, []string{"job", "status"}),

		JobDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of job runs in seconds",
			Buckets: []float64{.005, .025, .1, .5, 1, 5, 30},
		}, []string{"job"}),

		JobLastSuccessStamp: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "worker_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful job run",
		}, []string{"job"}),
	}
}

func (m *Metrics) record(job string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.JobDurationSeconds.WithLabelValues(job).Observe(seconds)
	if err != nil {
		m.JobRunsTotal.WithLabelValues(job, "failure").Inc()
		return
	}
	m.JobRunsTotal.WithLabelValues(job, "success").Inc()
	m.JobLastSuccessStamp.WithLabelValues(job).SetToCurrentTime()
}
