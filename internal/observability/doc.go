// Package observability provides the logging, metrics and tracing
// infrastructure shared by the pagination engine and the store.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics for store round trips and the connection pool
//   - tracing: OpenTelemetry span helpers
//
// Example usage:
//
//	import (
//	    "pagequery/internal/observability/logging"
//	    "pagequery/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordStoreQuery("success", 12*time.Millisecond)
//	}
package observability
