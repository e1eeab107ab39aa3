package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a paginated query with structured fields.
func LogRequest(logger *slog.Logger, queryID string, strategy Strategy, req Request) {
	logger.Debug("Paginated query",
		slog.String("query_id", queryID),
		slog.String("strategy", strategy.String()),
		slog.Int("offset", req.Offset),
		slog.Int("size", req.Size))
}

// LogResponse logs a paginated query outcome with duration.
func LogResponse(logger *slog.Logger, queryID string, req Request, returnedCount int, total int64, duration time.Duration) {
	logger.Info("Paginated query completed",
		slog.String("query_id", queryID),
		slog.Int("offset", req.Offset),
		slog.Int("size", req.Size),
		slog.Int("returned_count", returnedCount),
		slog.Int64("total_count", total),
		slog.Int64("duration_ms", duration.Milliseconds()))
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, queryID string, req Request, err error, errorType string) {
	logger.Error("Pagination error",
		slog.String("query_id", queryID),
		slog.Int("offset", req.Offset),
		slog.Int("size", req.Size),
		slog.Any("error", err),
		slog.String("error_type", errorType))
}
