// Package service defines domain service interfaces implemented by the infra layer.
package service

import "context"

// OAuthUser carries the profile fields this system consumes from a completed
// OAuth handshake. ID is the provider's stable user identifier.
type OAuthUser struct {
	ID        string // Provider user id (stringified).
	Login     string // Provider username handle.
	Name      string
	Email     string
	AvatarURL string
	Bio       string
}

// OAuthService abstracts the external identity provider. The provider's
// token issuance and verification internals are out of scope; this contract
// covers only what the sign-in bootstrap needs.
type OAuthService interface {
	// BuildAuthorizationURL returns the provider's authorize URL carrying the
	// given opaque state value.
	BuildAuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for the verified user profile.
	ExchangeCode(ctx context.Context, code string) (*OAuthUser, error)
}
