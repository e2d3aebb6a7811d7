package common

import (
	"context"
	"log/slog"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRunID    contextKey = "run_id"
	ContextKeyDocument contextKey = "document"
)

// WithRunID adds a pipeline run ID to the context
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, runID)
}

// RunIDFromContext extracts the run ID from context
func RunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(ContextKeyRunID).(string); ok {
		return runID
	}
	return ""
}

// WithDocument adds the document name being processed to the context
func WithDocument(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ContextKeyDocument, name)
}

// DocumentFromContext extracts the document name from context
func DocumentFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(ContextKeyDocument).(string); ok {
		return name
	}
	return ""
}

// LoggerFrom decorates logger with the run and document IDs carried by ctx.
func LoggerFrom(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if id := RunIDFromContext(ctx); id != "" {
		logger = logger.With("run_id", id)
	}
	if name := DocumentFromContext(ctx); name != "" {
		logger = logger.With("document", name)
	}
	return logger
}
