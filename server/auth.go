package server

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/uaforge/uaserve/ua"
)

// AnonymousIdentityAuthenticator authenticates an AnonymousIdentity.
type AnonymousIdentityAuthenticator interface {
	// AuthenticateAnonymousIdentity returns nil when the identity is
	// accepted, or BadUserAccessDenied otherwise.
	AuthenticateAnonymousIdentity(userIdentity ua.AnonymousIdentity, applicationURI string, endpointURL string) error
}

// AuthenticateAnonymousIdentityFunc authenticates an AnonymousIdentity.
type AuthenticateAnonymousIdentityFunc func(userIdentity ua.AnonymousIdentity, applicationURI string, endpointURL string) error

// AuthenticateAnonymousIdentity returns nil when the identity is accepted,
// or BadUserAccessDenied otherwise.
func (a AuthenticateAnonymousIdentityFunc) AuthenticateAnonymousIdentity(userIdentity ua.AnonymousIdentity, applicationURI string, endpointURL string) error {
	return a(userIdentity, applicationURI, endpointURL)
}

// UserNameIdentityAuthenticator authenticates a UserNameIdentity.
type UserNameIdentityAuthenticator interface {
	// AuthenticateUserNameIdentity returns nil when the identity is
	// accepted, BadUserAccessDenied otherwise.
	AuthenticateUserNameIdentity(userIdentity ua.UserNameIdentity, applicationURI string, endpointURL string) error
}

// AuthenticateUserNameIdentityFunc authenticates a UserNameIdentity.
type AuthenticateUserNameIdentityFunc func(userIdentity ua.UserNameIdentity, applicationURI string, endpointURL string) error

// AuthenticateUserNameIdentity returns nil when the identity is accepted,
// BadUserAccessDenied otherwise.
func (a AuthenticateUserNameIdentityFunc) AuthenticateUserNameIdentity(userIdentity ua.UserNameIdentity, applicationURI string, endpointURL string) error {
	return a(userIdentity, applicationURI, endpointURL)
}

// X509IdentityAuthenticator authenticates an X509Identity.
type X509IdentityAuthenticator interface {
	// AuthenticateX509Identity returns nil when the identity is accepted,
	// BadUserAccessDenied otherwise.
	AuthenticateX509Identity(userIdentity ua.X509Identity, applicationURI string, endpointURL string) error
}

// AuthenticateX509IdentityFunc authenticates an X509Identity.
type AuthenticateX509IdentityFunc func(userIdentity ua.X509Identity, applicationURI string, endpointURL string) error

// AuthenticateX509Identity returns nil when the identity is accepted,
// BadUserAccessDenied otherwise.
func (a AuthenticateX509IdentityFunc) AuthenticateX509Identity(userIdentity ua.X509Identity, applicationURI string, endpointURL string) error {
	return a(userIdentity, applicationURI, endpointURL)
}

// IssuedIdentityAuthenticator authenticates an IssuedIdentity.
type IssuedIdentityAuthenticator interface {
	// AuthenticateIssuedIdentity returns nil when the identity is accepted,
	// BadIdentityTokenRejected or BadUserAccessDenied otherwise.
	AuthenticateIssuedIdentity(userIdentity ua.IssuedIdentity, applicationURI string, endpointURL string) error
}

// AuthenticateIssuedIdentityFunc authenticates an IssuedIdentity.
type AuthenticateIssuedIdentityFunc func(userIdentity ua.IssuedIdentity, applicationURI string, endpointURL string) error

// AuthenticateIssuedIdentity returns nil when the identity is accepted,
// BadIdentityTokenRejected or BadUserAccessDenied otherwise.
func (a AuthenticateIssuedIdentityFunc) AuthenticateIssuedIdentity(userIdentity ua.IssuedIdentity, applicationURI string, endpointURL string) error {
	return a(userIdentity, applicationURI, endpointURL)
}

// JWTIssuedTokenAuthenticator validates issued identity tokens as JSON web
// tokens signed with an HMAC-SHA256 shared secret.
type JWTIssuedTokenAuthenticator struct {
	// Key is the shared HS256 secret.
	Key []byte
	// Issuer, when set, must match the token's "iss" claim.
	Issuer string
	// Audience, when set, must match one of the token's "aud" claims.
	Audience string
}

// AuthenticateIssuedIdentity returns nil when the token parses, is signed
// with the shared key and carries the expected claims, BadIdentityTokenRejected
// otherwise.
func (a *JWTIssuedTokenAuthenticator) AuthenticateIssuedIdentity(userIdentity ua.IssuedIdentity, applicationURI string, endpointURL string) error {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if a.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.Issuer))
	}
	if a.Audience != "" {
		opts = append(opts, jwt.WithAudience(a.Audience))
	}
	token, err := jwt.Parse(string(userIdentity.TokenData), func(t *jwt.Token) (interface{}, error) {
		return a.Key, nil
	}, opts...)
	if err != nil || !token.Valid {
		return ua.BadIdentityTokenRejected
	}
	return nil
}
