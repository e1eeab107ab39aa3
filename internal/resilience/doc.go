// Package resilience groups the fault tolerance helpers used around the
// query store.
//
// The subpackages provide:
//   - circuitbreaker: a gobreaker wrapper for database connections
//   - retry: exponential backoff with jitter for transient driver errors
//
// Usage Example:
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(db)
//	rows, err := dcb.QueryContext(ctx, query, args...)
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return ping(ctx)
//	})
package resilience
