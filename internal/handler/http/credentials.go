// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/session"
	"github.com/fintest/plaidbox/internal/utils"
	"github.com/fintest/plaidbox/models"
)

type storeCredentialsRequest struct {
	ClientID    string             `json:"client_id"`
	Secret      string             `json:"secret"`
	Environment models.Environment `json:"environment"`
	Remember    bool               `json:"remember"`
}

// storeCredentials handles POST /api/credentials: validate the pair against
// the vendor, then persist it encrypted in the session (and the remember
// cookie when asked).
func (h *Handler) storeCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req storeCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Environment == "" {
		req.Environment = models.EnvironmentSandbox
	}

	creds := models.CredentialRecord{
		ClientID:    req.ClientID,
		Secret:      req.Secret,
		Environment: req.Environment,
	}

	if err := h.services.CredentialService.Validate(ctx, creds); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.credentials.Store(w, r, creds, req.Remember); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("client_id", creds.ClientID).Msg("credentials stored")
	h.writeSuccess(w, http.StatusOK)
}

// logout handles POST /api/credentials/logout. Always succeeds; logging out
// twice is fine.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.credentials.Clear(w, r)
	h.writeSuccess(w, http.StatusOK)
}

// credentialStatus handles GET /api/credentials/status. An absent session
// is a valid answer, not an error; only a poisoned blob surfaces as 401
// (with the stored state already cleared).
func (h *Handler) credentialStatus(w http.ResponseWriter, r *http.Request) {
	sess, err := h.credentials.Load(w, r)
	if err != nil {
		if errors.Is(err, session.ErrNoCredentials) {
			utils.WriteJSON(w, models.CredentialStatusResponse{Authenticated: false}, http.StatusOK)
			return
		}
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CredentialStatusResponse{
		Authenticated:  true,
		ClientID:       sess.Credentials.ClientID,
		Environment:    sess.Credentials.Environment,
		HasAccessToken: sess.AccessToken != "",
	}, http.StatusOK)
}
