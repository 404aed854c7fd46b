package session

import "errors"

var (
	// ErrSessionNotFound is returned when no session file exists for the
	// given id, or the file has already expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidSessionID is returned when a session id is not a UUID.
	// Session ids double as file names, so anything else is rejected before
	// it can touch the filesystem.
	ErrInvalidSessionID = errors.New("invalid session id")

	// ErrNoCredentials is returned by [CredentialStore.Load] when neither
	// the session nor the remember cookie carries a credential blob. The
	// caller redirects to re-authentication.
	ErrNoCredentials = errors.New("no stored credentials")
)
