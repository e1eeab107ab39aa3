// Package metrics provides Prometheus metrics for store round trips and the
// database connection pool.
//
// All metrics are registered with the Prometheus default registry.
//
// Example usage:
//
//	import "pagequery/internal/observability/metrics"
//
//	func execute(ctx context.Context) error {
//	    start := time.Now()
//	    err := run(ctx)
//	    metrics.RecordStoreQuery(metrics.StatusFor(err), time.Since(start))
//	    return err
//	}
package metrics
