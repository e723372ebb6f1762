package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the key type for values stored in the request context.
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// ValidatedBodyKey is the key under which the validation middleware
	// stores the decoded request payload for the downstream handler.
	ValidatedBodyKey ContextKey = "validatedBody"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetValidatedBody stores a decoded and validated request payload.
func SetValidatedBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, ValidatedBodyKey, body)
}

// ValidatedBody retrieves the payload stored by the validation middleware,
// or nil when the route carries no validation rules.
func ValidatedBody(ctx context.Context) any {
	return ctx.Value(ValidatedBodyKey)
}
