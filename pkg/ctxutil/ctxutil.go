package ctxutil

import "context"

type ctxKey string

const (
	usernameKey  ctxKey = "username"
	requestIDKey ctxKey = "request_id"
)

// WithUsername stores the session username in the context.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromCtx extracts the session username from the context.
// Returns "" and false if the value is missing or empty.
func UsernameFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
