package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps the JWT that identifies one browser session.
//
// It embeds [jwt.Token] for low-level operations (signing, parsing) and
// [jwt.RegisteredClaims] for standard claim access. SignedString holds the
// compact serialized form ready to be set as the session cookie value.
//
// SessionID is a cached copy of the "jti" claim. It doubles as the session
// file name, so it is always a UUID generated server-side.
type SessionToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization; only the compact string form is
	// meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SessionID is the session identifier extracted from the "jti" claim.
	SessionID string `json:"-"`
}

// GetSessionID extracts the session identifier from the token's "jti" claim.
// Returns an error if the claim is missing or empty.
func (t *SessionToken) GetSessionID() (string, error) {
	if t.RegisteredClaims.ID == "" {
		return "", fmt.Errorf("session token has no jti claim")
	}
	return t.RegisteredClaims.ID, nil
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
