package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/fintest/plaidbox/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT that identifies one
// browser session.
//
// The token includes the following standard claims:
//   - ID        (jti): a fresh UUID; doubles as the session file name
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// Returns an error if ttl is zero, signKey is empty, or signing fails.
func GenerateSessionToken(ttl time.Duration, signKey string) (models.SessionToken, error) {
	if ttl == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	sessionID := uuid.NewString()

	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error signing session token: %w", err)
	}

	return models.SessionToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     signedString,
		SessionID:        sessionID,
	}, nil
}

// ParseSessionToken validates a compact session JWT and extracts its session
// identifier.
//
// Validation enforces the HS256 signing method, the signature itself, and
// the exp claim. Returns a wrapped error for any invalid, expired, or
// foreign token; callers treat every failure as "no session".
func ParseSessionToken(tokenString string, signKey string) (models.SessionToken, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(signKey), nil
	})
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error parsing session token: %w", err)
	}

	sessionToken := models.SessionToken{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
	}

	sessionID, err := sessionToken.GetSessionID()
	if err != nil {
		return models.SessionToken{}, err
	}

	// The jti doubles as a file name; accept only server-generated UUIDs so
	// a forged claim cannot escape the session directory.
	if _, err := uuid.Parse(sessionID); err != nil {
		return models.SessionToken{}, fmt.Errorf("session token jti is not a valid uuid: %w", err)
	}

	sessionToken.SessionID = sessionID
	return sessionToken, nil
}
