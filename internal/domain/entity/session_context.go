package entity

import "context"

type sessionCtxKey struct{}

// WithSession returns a context carrying the session. The delivery layer
// attaches it once per request; every outbound API call reads it from there.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext returns the session attached to the context, or nil.
func SessionFromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionCtxKey{}).(*Session); ok {
		return s
	}

	return nil
}
