package session

import (
	"context"

	"workspace-admin/pkg/log"
)

type idKey struct{}

// WithID returns a context carrying the session ID of the current request.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// IDFromContext returns the session ID set by WithID.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(idKey{}).(string)
	return id
}

// ClearOnUnauthorized returns a hook that drops the request's session when
// the remote API rejects its token.
func ClearOnUnauthorized(store Store, l log.Logger) func(ctx context.Context) {
	return func(ctx context.Context) {
		id := IDFromContext(ctx)
		if id == "" {
			return
		}
		if err := store.Delete(ctx, id); err != nil {
			l.Warnf(ctx, "session.ClearOnUnauthorized: %v", err)
			return
		}
		l.Infof(ctx, "session %s cleared after 401 from backend", id)
	}
}
