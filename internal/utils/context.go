// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT session token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/fintest/plaidbox/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CredentialsCtxKey is the key under which the session middleware stores the
// authenticated caller's decrypted [models.CredentialRecord].
var CredentialsCtxKey = contextKey("credentials")

// SessionIDCtxKey is the key under which the session middleware stores the
// current session identifier.
var SessionIDCtxKey = contextKey("sessionID")

// AccessTokenCtxKey is the key under which the session middleware stores the
// access token retained from the most recent token exchange, if any.
var AccessTokenCtxKey = contextKey("accessToken")

// GetCredentialsFromContext retrieves the caller's credential record from
// the context.
//
// Returns the record and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetCredentialsFromContext(ctx context.Context) (models.CredentialRecord, bool) {
	creds, ok := ctx.Value(CredentialsCtxKey).(models.CredentialRecord)
	return creds, ok
}

// GetSessionIDFromContext retrieves the session identifier from the context.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}

// GetAccessTokenFromContext retrieves the retained access token from the
// context. The flag is false when the session has not exchanged a public
// token yet.
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	return token, ok && token != ""
}
