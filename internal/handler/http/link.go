// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/utils"
	"github.com/fintest/plaidbox/models"
)

// createLinkToken handles POST /api/link/token.
func (h *Handler) createLinkToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := utils.GetCredentialsFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.LinkTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.LinkService.CreateLinkToken(ctx, creds, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

type exchangeResponse struct {
	Success   bool   `json:"success"`
	ItemID    string `json:"item_id"`
	RequestID string `json:"request_id,omitempty"`
}

// exchangePublicToken handles POST /api/link/exchange. The access token
// stays server-side: it is retained in the session for the read endpoints
// and never returned to the browser.
func (h *Handler) exchangePublicToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := utils.GetCredentialsFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.LinkService.Exchange(ctx, creds, req.PublicToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		if err := h.credentials.SaveAccessToken(r, sessionID, resp.AccessToken); err != nil {
			log.Warn().Err(err).Msg("could not retain access token in session")
		}
	}

	utils.WriteJSON(w, exchangeResponse{
		Success:   true,
		ItemID:    resp.ItemID,
		RequestID: resp.RequestID,
	}, http.StatusOK)
}
