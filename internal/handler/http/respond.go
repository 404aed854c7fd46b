package http

import (
	"net/http"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/utils"
	"github.com/fintest/plaidbox/models"
)

// writeError translates err to its HTTP status and a stable JSON error body.
// Internal detail rides along only in development mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	body := models.APIResponse{
		Success: false,
		Error:   messageFromError(err),
	}
	if h.devMode {
		body.Detail = err.Error()
	}

	utils.WriteJSON(w, body, status)
}

func (h *Handler) writeSuccess(w http.ResponseWriter, status int) {
	utils.WriteJSON(w, models.APIResponse{Success: true}, status)
}
