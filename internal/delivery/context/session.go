package context

import (
	"context"

	"pitchboard/internal/domain/entity"
)

// KeySession is the key for storing the materialized session in context.
const KeySession ContextKey = "session"

// GetSession extracts the materialized session from context.Context.
// A nil return means no session token was presented at all.
func GetSession(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}

// WithSession returns a new context carrying the materialized session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}
