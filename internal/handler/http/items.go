package http

import (
	"encoding/json"
	"net/http"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/utils"
)

type registerItemRequest struct {
	ItemID string `json:"item_id"`
}

type registerItemResponse struct {
	Success    bool   `json:"success"`
	ItemID     string `json:"item_id"`
	Registered bool   `json:"registered"`
}

// registerItem handles POST /api/items: explicit registration of an item id
// so its webhooks become routable without going through a Link exchange.
func (h *Handler) registerItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := utils.GetCredentialsFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req registerItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.LinkService.RegisterItem(ctx, creds, req.ItemID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, registerItemResponse{
		Success:    true,
		ItemID:     req.ItemID,
		Registered: registered,
	}, http.StatusOK)
}
