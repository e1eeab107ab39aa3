// Package tracing provides OpenTelemetry tracing helpers.
//
// Spans are created through the global tracer provider, so the application
// chooses the exporter by installing a provider at startup.
//
// Example usage:
//
//	func paginate(ctx context.Context) (err error) {
//	    ctx, span := tracing.StartSpan(ctx, "pagequery.Paginate",
//	        attribute.String("pagination.strategy", "two-call"))
//	    defer func() { tracing.EndSpan(span, err) }()
//	    // ... run queries ...
//	}
package tracing
