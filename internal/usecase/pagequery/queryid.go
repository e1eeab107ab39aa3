package pagequery

import (
	"context"

	"github.com/google/uuid"

	"pagequery/internal/observability/logging"
)

// ensureQueryID returns the query id carried by ctx, creating one when absent.
// The id correlates the log lines of the count and window round trips.
func ensureQueryID(ctx context.Context) (context.Context, string) {
	if id := logging.QueryIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return logging.ContextWithQueryID(ctx, id), id
}
