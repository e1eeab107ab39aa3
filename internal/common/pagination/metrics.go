package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts paginated queries.
	// Labels: strategy (two-call, single-pass), status (success, error)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_requests_total",
			Help: "Total number of paginated queries",
		},
		[]string{"strategy", "status"},
	)

	// DurationSeconds tracks paginated query duration distribution.
	// Labels: strategy
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pagination_duration_seconds",
			Help:    "Paginated query duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"strategy"},
	)

	// RowsScannedTotal counts rows read from the store.
	// For single-pass this is every row of the unbounded query.
	RowsScannedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_rows_scanned_total",
			Help: "Total number of rows read from the store by paginated queries",
		},
		[]string{"strategy"},
	)

	// CountRewriteFailuresTotal counts queries whose count query could not be derived.
	CountRewriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_count_rewrite_failures_total",
			Help: "Total number of queries rejected by the count rewriter",
		},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, rewrite, store, mapping, timeout)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a paginated query outcome.
func RecordRequest(strategy Strategy, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RequestsTotal.WithLabelValues(strategy.String(), status).Inc()
}

// RecordDuration records query duration in seconds.
func RecordDuration(strategy Strategy, duration float64) {
	DurationSeconds.WithLabelValues(strategy.String()).Observe(duration)
}

// RecordRowsScanned adds n to the rows scanned counter.
func RecordRowsScanned(strategy Strategy, n int64) {
	RowsScannedTotal.WithLabelValues(strategy.String()).Add(float64(n))
}

// RecordRewriteFailure increments the count rewrite failure counter.
func RecordRewriteFailure() {
	CountRewriteFailuresTotal.Inc()
}

// RecordError records an error metric.
// errorType should be one of: "validation", "rewrite", "store", "mapping", "timeout"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
