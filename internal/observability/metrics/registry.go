package metrics

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store metrics track round trips issued through the store integration
var (
	// StoreQueriesTotal counts store round trips by outcome
	StoreQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_queries_total",
			Help: "Total number of store round trips",
		},
		[]string{"status"}, // status: success, error, timeout, rejected
	)

	// StoreQueryDuration measures store round trip duration in seconds
	StoreQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Store round trip duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	// StoreRetriesTotal counts retried store round trips
	StoreRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_retries_total",
			Help: "Total number of retried store round trips",
		},
	)

	// StoreCircuitBreakerOpen is 1 while the store circuit breaker is open
	StoreCircuitBreakerOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_circuit_breaker_open",
			Help: "1 if the store circuit breaker is open, 0 otherwise",
		},
		[]string{"name"},
	)
)

// Database metrics track connection pool usage
var (
	// DBConnectionsActive tracks in-use database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// DBConnectionWaitTotal counts connections that had to be waited for
	DBConnectionWaitTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_wait_count",
			Help: "Total number of connections waited for (from sql.DBStats)",
		},
	)
)

// StatusFor classifies an error into a store_queries_total status label.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "error"
	}
}

// RecordStoreQuery records one store round trip.
func RecordStoreQuery(status string, duration time.Duration) {
	StoreQueriesTotal.WithLabelValues(status).Inc()
	StoreQueryDuration.Observe(duration.Seconds())
}

// RecordStoreRetry increments the retry counter.
func RecordStoreRetry() {
	StoreRetriesTotal.Inc()
}

// SetCircuitBreakerOpen sets the open gauge for the named breaker.
func SetCircuitBreakerOpen(name string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	StoreCircuitBreakerOpen.WithLabelValues(name).Set(v)
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
	DBConnectionWaitTotal.Set(float64(stats.WaitCount))
}
