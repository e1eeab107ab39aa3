package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// levelFromEnv reads LOG_LEVEL. Supported levels: debug, info, warn, error.
// Default level: info
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a new structured logger with JSON output on stdout.
// The log level can be controlled via the LOG_LEVEL environment variable.
func NewLogger() *slog.Logger {
	return New(os.Stdout, "json")
}

// NewTextLogger creates a new structured logger with human-readable text output.
// This is useful for local development and debugging.
func NewTextLogger() *slog.Logger {
	return New(os.Stdout, "text")
}

// New creates a logger writing to w. format is "json" or "text"; anything
// else selects JSON.
func New(w io.Writer, format string) *slog.Logger {
	logLevel := levelFromEnv()
	opts := &slog.HandlerOptions{
		Level: logLevel,
		// Add source code location when verbose
		AddSource: logLevel <= slog.LevelDebug,
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ContextWithQueryID stores a query correlation id in ctx.
func ContextWithQueryID(ctx context.Context, queryID string) context.Context {
	return context.WithValue(ctx, queryIDContextKey, queryID)
}

// QueryIDFromContext returns the query id stored in ctx, or "".
func QueryIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(queryIDContextKey).(string); ok {
		return id
	}
	return ""
}

// WithQueryID returns a new logger that includes the query ID from the context.
// This correlates the count and window round trips of one paginated query.
func WithQueryID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := QueryIDFromContext(ctx)
	if id == "" {
		return logger
	}
	return logger.With(slog.String("query_id", id))
}

// WithFields returns a new logger with additional structured fields.
// Fields are provided as key-value pairs.
func WithFields(logger *slog.Logger, fields map[string]interface{}) *slog.Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return logger.With(args...)
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
// This enables passing loggers through the application via context.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const (
	loggerContextKey  contextKey = "logger"
	queryIDContextKey contextKey = "query_id"
)
