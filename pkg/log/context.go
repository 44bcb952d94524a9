package log

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey int

const (
	requestIDKey contextKey = iota
	fieldsKey
)

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns "" when absent or when ctx is nil.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithFields returns a context carrying structured fields, merged over
// any fields already present.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	merged := make(map[string]any)
	for k, v := range FieldsFromContext(ctx) {
		merged[k] = v
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			merged[key] = keysAndValues[i+1]
		}
	}
	return context.WithValue(ctx, fieldsKey, merged)
}

// FieldsFromContext extracts structured fields from the context, or nil.
func FieldsFromContext(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey).(map[string]any)
	return fields
}
