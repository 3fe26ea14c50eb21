// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"pitchboard/config"
	deliverycontext "pitchboard/internal/delivery/context"
	"pitchboard/internal/domain/entity"
	"pitchboard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware materializes the caller's session from the session token.
// A missing, malformed, or expired token yields an unauthenticated request;
// it is never an error. Handlers and use cases decide what sign-in gates.
type SessionMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenSvc service.TokenService, cfg *config.Config) *SessionMiddleware {
	cookieName := ""
	if cfg != nil && cfg.Session != nil {
		cookieName = cfg.Session.CookieName
	}

	return &SessionMiddleware{tokenSvc: tokenSvc, cookieName: cookieName}
}

// Materialize extracts and verifies the session token, placing the resulting
// session in the request context. A token whose subject claim is empty
// produces a session with a nil author id, which downstream treats as
// unauthenticated.
func (m *SessionMiddleware) Materialize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return next(c)
		}

		authorID, err := m.tokenSvc.AuthorIDFromToken(tokenString)
		if err != nil {
			// Invalid or expired token: proceed unauthenticated.
			return next(c)
		}

		session := &entity.Session{AuthorID: authorID}
		ctx := deliverycontext.WithSession(c.Request().Context(), session)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// extractToken reads the session token from the Authorization header or,
// failing that, the session cookie.
func (m *SessionMiddleware) extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
	}

	if m.cookieName == "" {
		return ""
	}

	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
