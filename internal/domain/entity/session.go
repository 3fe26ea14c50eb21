package entity

import "github.com/google/uuid"

// Session is the materialized view of a verified session token. It is
// derived per request and never persisted. AuthorID is uuid.Nil when the
// token carried no identity claim; such a session is unauthenticated even
// though a token exists.
type Session struct {
	AuthorID uuid.UUID
}

// SignedIn reports whether the session carries an authenticated author id.
func (s *Session) SignedIn() bool {
	return s != nil && s.AuthorID != uuid.Nil
}
