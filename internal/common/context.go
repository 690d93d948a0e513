package common

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyCorrelationID contextKey = "correlation_id"
	ContextKeyRunID         contextKey = "run_id"
)

// WithCorrelationID adds a per-item correlation ID to the context.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, ContextKeyCorrelationID, correlationID)
}

// CorrelationIDFromContext extracts the correlation ID, minting one if absent
// so log lines are always correlatable.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyCorrelationID).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}

// WithRunID adds the batch run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, runID)
}

// RunIDFromContext extracts the batch run ID from context.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyRunID).(string); ok {
		return id
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
