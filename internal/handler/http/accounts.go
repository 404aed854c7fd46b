package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fintest/plaidbox/internal/utils"
	"github.com/fintest/plaidbox/models"
)

func (h *Handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	h.itemRead(w, r, h.services.ItemReadService.GetAccounts)
}

func (h *Handler) getIdentity(w http.ResponseWriter, r *http.Request) {
	h.itemRead(w, r, h.services.ItemReadService.GetIdentity)
}

func (h *Handler) getAuth(w http.ResponseWriter, r *http.Request) {
	h.itemRead(w, r, h.services.ItemReadService.GetAuth)
}

func (h *Handler) getBalance(w http.ResponseWriter, r *http.Request) {
	h.itemRead(w, r, h.services.ItemReadService.GetBalance)
}

// itemRead is the shared shape of the four vendor read endpoints: resolve
// credentials and access token from the session, call through, and relay
// the vendor payload untouched. An explicit access_token query parameter
// overrides the session's retained token.
func (h *Handler) itemRead(w http.ResponseWriter, r *http.Request, read func(context.Context, models.CredentialRecord, string) (json.RawMessage, error)) {
	ctx := r.Context()

	creds, ok := utils.GetCredentialsFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	accessToken, _ := utils.GetAccessTokenFromContext(ctx)
	if v := r.URL.Query().Get("access_token"); v != "" {
		accessToken = v
	}

	raw, err := read(ctx, creds, accessToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}
