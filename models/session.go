package models

import "time"

// SessionData is the server-side state kept for one browser session. It is
// persisted as a JSON file keyed by session id and reaped after the session
// TTL elapses.
type SessionData struct {
	// CreatedAt is when the session was established. The reaper removes
	// session files once now - CreatedAt exceeds the configured TTL.
	CreatedAt time.Time `json:"created_at"`

	// CredentialBlob is the caller's encrypted credential record in
	// hex(iv):hex(ciphertext) envelope form. Never stored in plaintext.
	CredentialBlob string `json:"credential_blob,omitempty"`

	// AccessToken is the most recent access token obtained by a
	// public-token exchange in this session. Lets the read endpoints work
	// without the browser resending the token on every call.
	AccessToken string `json:"access_token,omitempty"`
}
