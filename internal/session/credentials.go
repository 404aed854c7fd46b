// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"net/http"

	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/crypto"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/utils"
	"github.com/fintest/plaidbox/models"
)

const (
	// SessionCookieName carries the signed JWT session identifier.
	SessionCookieName = "plaidbox_session"

	// RememberCookieName carries the encrypted credential blob when the
	// caller opted into persistence across session resets.
	RememberCookieName = "plaidbox_credentials"
)

// Session is the authenticated state resolved for one request.
type Session struct {
	// ID is the session identifier (also the session file name).
	ID string

	// Credentials is the caller's decrypted credential record.
	Credentials models.CredentialRecord

	// AccessToken is the access token retained from the most recent token
	// exchange in this session; empty until an exchange happens.
	AccessToken string
}

// CredentialStore binds the credential codec, the session file store, and
// the two cookies into the load/store/clear contract the HTTP layer uses.
type CredentialStore struct {
	files *FileStore
	codec crypto.CredentialCodec

	signKey string
	ttl     config.Session
	secure  bool

	logger *logger.Logger
}

// NewCredentialStore wires a [CredentialStore]. Cookies carry the Secure
// attribute when the app runs in production.
func NewCredentialStore(files *FileStore, codec crypto.CredentialCodec, appCfg config.App, sessionCfg config.Session, logger *logger.Logger) *CredentialStore {
	return &CredentialStore{
		files:   files,
		codec:   codec,
		signKey: appCfg.SessionSignKey,
		ttl:     sessionCfg,
		secure:  appCfg.IsProduction(),
		logger:  logger,
	}
}

// Store encrypts record and writes it into the session, establishing a new
// session when the request carries none. When remember is true the blob is
// additionally written into a long-lived cookie with the same max-age as
// the session; when false any previous remember cookie is dropped.
func (s *CredentialStore) Store(w http.ResponseWriter, r *http.Request, record models.CredentialRecord, remember bool) error {
	blob, err := s.codec.Encrypt(record)
	if err != nil {
		return err
	}

	sessionID, ok := s.currentSessionID(r)
	if !ok {
		token, err := utils.GenerateSessionToken(s.ttl.TTL, s.signKey)
		if err != nil {
			return err
		}
		sessionID = token.SessionID
		s.setCookie(w, SessionCookieName, token.SignedString)
	}

	data := models.SessionData{
		CreatedAt:      s.files.now(),
		CredentialBlob: blob,
	}
	if err := s.files.Save(sessionID, data); err != nil {
		return err
	}

	if remember {
		s.setCookie(w, RememberCookieName, blob)
	} else {
		s.expireCookie(w, RememberCookieName)
	}

	return nil
}

// Load resolves the session for the request.
//
// The session blob is preferred; when the session is gone but a remember
// cookie survives, the credentials are restored from the cookie and the
// session is re-established best-effort (a failed session write does not
// fail the read). Any undecryptable blob is cleared on sight and surfaces
// as [crypto.ErrDecryption] so the boundary can force re-authentication.
func (s *CredentialStore) Load(w http.ResponseWriter, r *http.Request) (Session, error) {
	if sessionID, ok := s.currentSessionID(r); ok {
		data, err := s.files.Load(sessionID)
		if err == nil && data.CredentialBlob != "" {
			record, err := s.codec.Decrypt(data.CredentialBlob)
			if err != nil {
				// fail-closed: a poisoned blob would fail on every
				// subsequent read, so drop everything now
				s.Clear(w, r)
				return Session{}, err
			}

			return Session{
				ID:          sessionID,
				Credentials: record,
				AccessToken: data.AccessToken,
			}, nil
		}
	}

	return s.loadFromRememberCookie(w, r)
}

// loadFromRememberCookie restores credentials from the remember cookie and
// opportunistically rebuilds the server-side session around them.
func (s *CredentialStore) loadFromRememberCookie(w http.ResponseWriter, r *http.Request) (Session, error) {
	cookie, err := r.Cookie(RememberCookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, ErrNoCredentials
	}

	record, err := s.codec.Decrypt(cookie.Value)
	if err != nil {
		s.Clear(w, r)
		return Session{}, err
	}

	session := Session{Credentials: record}

	token, tokenErr := utils.GenerateSessionToken(s.ttl.TTL, s.signKey)
	if tokenErr != nil {
		s.logger.Warn().Err(tokenErr).Msg("could not mint session token during cookie restore")
		return session, nil
	}

	data := models.SessionData{
		CreatedAt:      s.files.now(),
		CredentialBlob: cookie.Value,
	}
	if saveErr := s.files.Save(token.SessionID, data); saveErr != nil {
		s.logger.Warn().Err(saveErr).Msg("could not re-populate session from remember cookie")
		return session, nil
	}

	s.setCookie(w, SessionCookieName, token.SignedString)
	session.ID = token.SessionID

	return session, nil
}

// SaveAccessToken retains the access token in the session state so the read
// endpoints can run without the browser resending it. The request must
// belong to an established session.
func (s *CredentialStore) SaveAccessToken(r *http.Request, sessionID, accessToken string) error {
	data, err := s.files.Load(sessionID)
	if err != nil {
		return err
	}

	data.AccessToken = accessToken
	return s.files.Save(sessionID, data)
}

// Clear destroys the session file and expires both cookies. Clearing twice
// is not an error.
func (s *CredentialStore) Clear(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := s.currentSessionID(r); ok {
		if err := s.files.Delete(sessionID); err != nil {
			s.logger.Warn().Err(err).Msg("could not delete session file")
		}
	}

	s.expireCookie(w, SessionCookieName)
	s.expireCookie(w, RememberCookieName)
}

// currentSessionID extracts and verifies the session id from the session
// cookie. Any invalid, expired, or forged token reads as "no session".
func (s *CredentialStore) currentSessionID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	token, err := utils.ParseSessionToken(cookie.Value, s.signKey)
	if err != nil {
		return "", false
	}

	return token.SessionID, true
}

func (s *CredentialStore) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.ttl.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *CredentialStore) expireCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// IsNoCredentials reports whether err means "nothing stored" as opposed to
// a real failure.
func IsNoCredentials(err error) bool {
	return errors.Is(err, ErrNoCredentials)
}
