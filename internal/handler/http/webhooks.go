// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/utils"
	"github.com/fintest/plaidbox/models"
)

// maxWebhookBodySize bounds inbound webhook bodies. Plaid webhooks are small
// JSON documents; anything past this is not one of them.
const maxWebhookBodySize = 1 << 20

// ingestWebhook handles POST /webhooks: the vendor-facing receiver.
func (h *Handler) ingestWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodySize))
	if err != nil {
		log.Err(err).Msg("could not read webhook body")
		h.writeError(w, r, err)
		return
	}

	if _, err := h.services.WebhookIngestService.Ingest(ctx, h.sourceIP(r), body); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK)
}

// listWebhooks handles GET /api/webhooks with optional filter and
// pagination query parameters.
func (h *Handler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseWebhookQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := h.services.WebhookQueryService.List(r.Context(), filter, page)
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) clearWebhooks(w http.ResponseWriter, r *http.Request) {
	h.services.WebhookQueryService.Clear(r.Context())
	h.writeSuccess(w, http.StatusOK)
}

func (h *Handler) webhookStats(w http.ResponseWriter, r *http.Request) {
	stats := h.services.WebhookQueryService.Stats(r.Context())
	utils.WriteJSON(w, stats, http.StatusOK)
}

// exportWebhooks handles GET /api/webhooks/export?format=json|csv.
func (h *Handler) exportWebhooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		raw, err := h.services.WebhookQueryService.ExportJSON(ctx)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="webhooks.json"`)
		w.Write(raw)

	case "csv":
		raw, err := h.services.WebhookQueryService.ExportCSV(ctx)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="webhooks.csv"`)
		w.Write(raw)

	default:
		utils.WriteJSON(w, models.APIResponse{
			Success: false,
			Error:   "unsupported export format: " + format,
		}, http.StatusBadRequest)
	}
}

// parseWebhookQuery maps list query parameters onto a filter. Timestamps are
// RFC 3339; numeric parameters must parse or the request is rejected.
func parseWebhookQuery(r *http.Request) (models.WebhookFilter, int, error) {
	q := r.URL.Query()

	filter := models.WebhookFilter{
		WebhookType: q.Get("webhook_type"),
		ItemID:      q.Get("item_id"),
		OwnerKeyID:  q.Get("client_id"),
	}

	if v := q.Get("after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return models.WebhookFilter{}, 0, badQueryParam("after", err)
		}
		filter.After = &t
	}
	if v := q.Get("before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return models.WebhookFilter{}, 0, badQueryParam("before", err)
		}
		filter.Before = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return models.WebhookFilter{}, 0, badQueryParam("limit", err)
		}
		filter.Limit = n
	}

	page := 0
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return models.WebhookFilter{}, 0, badQueryParam("page", err)
		}
		page = n
	}

	return filter, page, nil
}

// sourceIP resolves the request's source address. X-Forwarded-For is
// client-controlled, so it is honored only when the deployment declares a
// trusted reverse proxy in front of the service; that proxy appends the
// address it accepted the connection from as the last hop. Without a
// trusted proxy the TCP peer address is the only value that cannot be
// forged, and the header is ignored.
func (h *Handler) sourceIP(r *http.Request) string {
	if h.webhooks.TrustForwardedHeader {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			hops := strings.Split(fwd, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
