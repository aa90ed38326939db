// Package ctxutil carries per-request identifiers through context.Context
// and renders them as log attributes.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Log attribute keys for the identifiers below.
const (
	RequestIDKey = "request_id"
	SessionIDKey = "session_id"
)

type (
	requestIDCtxKey struct{}
	sessionIDCtxKey struct{}
)

// WithSessionID stores the unlocked session's ID in the context.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDCtxKey{}, id)
}

// SessionIDFromCtx returns the session ID, or false when absent or uuid.Nil.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDCtxKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, id)
}

// RequestIDFromCtx returns the request ID or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}

// LogAttrs returns the identifiers present in ctx as slog attributes.
func LogAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String(RequestIDKey, id))
	}
	if id, ok := SessionIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String(SessionIDKey, id.String()))
	}
	return attrs
}
