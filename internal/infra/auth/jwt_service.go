// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"pitchboard/config"
	"pitchboard/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    cfg.Session.TokenTTL,
	}, nil
}

// GenerateToken creates a signed session token for a given author.
// A nil author id produces a token with an empty subject; such a token is
// verifiable but unauthenticated (the original sign-in flow issues one when
// the account linkage lookup fails).
func (s *jwtService) GenerateToken(authorID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	if authorID != uuid.Nil {
		claims["sub"] = authorID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// AuthorIDFromToken verifies the token and extracts the embedded author id.
func (s *jwtService) AuthorIDFromToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("failed to parse token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		// A token without a subject is valid but carries no identity.
		return uuid.Nil, nil
	}

	authorID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid author id in token")
	}

	return authorID, nil
}
