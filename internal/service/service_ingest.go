// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/store"
	"github.com/fintest/plaidbox/models"
)

type webhookIngestService struct {
	allowedIPs map[string]struct{}
	registry   store.ItemRegistry
	webhooks   store.WebhookStorage

	// now is swappable for tests.
	now func() time.Time

	logger *logger.Logger
}

func NewWebhookIngestService(cfg config.Webhooks, registry store.ItemRegistry, webhooks store.WebhookStorage, logger *logger.Logger) WebhookIngestService {
	allowed := make(map[string]struct{}, len(cfg.AllowedIPs))
	for _, ip := range cfg.AllowedIPs {
		allowed[strings.TrimSpace(ip)] = struct{}{}
	}

	return &webhookIngestService{
		allowedIPs: allowed,
		registry:   registry,
		webhooks:   webhooks,
		now:        time.Now,
		logger:     logger,
	}
}

// webhookPayload is the slice of the vendor payload the ingestor inspects.
// Everything else is stored opaque.
type webhookPayload struct {
	WebhookType string `json:"webhook_type"`
	ItemID      string `json:"item_id"`
}

// Ingest runs the provenance chain: source address, payload shape, item
// routing. The checks are ordered cheapest-first and the first failure is
// final; a rejected webhook leaves the store untouched.
func (s *webhookIngestService) Ingest(ctx context.Context, sourceIP string, rawBody []byte) (models.WebhookRecord, error) {
	ip := normalizeIP(sourceIP)
	if _, ok := s.allowedIPs[ip]; !ok {
		s.logger.Warn().Str("source_ip", ip).Msg("webhook from unlisted source rejected")
		return models.WebhookRecord{}, fmt.Errorf("%w: %s", ErrForbiddenSource, ip)
	}

	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return models.WebhookRecord{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if payload.ItemID == "" {
		return models.WebhookRecord{}, fmt.Errorf("%w: missing item_id", ErrMalformedPayload)
	}

	item, ok := s.registry.Lookup(payload.ItemID)
	if !ok {
		s.logger.Warn().Str("item_id", payload.ItemID).Msg("webhook for unregistered item rejected")
		return models.WebhookRecord{}, fmt.Errorf("%w: %s", ErrUnknownItem, payload.ItemID)
	}

	record := models.WebhookRecord{
		ReceivedAt:  s.now(),
		WebhookType: payload.WebhookType,
		ItemID:      payload.ItemID,
		OwnerKeyID:  item.Owner.ClientID,
		Verified:    true,
		Payload:     json.RawMessage(append([]byte(nil), rawBody...)),
	}

	s.webhooks.Append(record)

	s.logger.Info().
		Str("item_id", record.ItemID).
		Str("webhook_type", record.WebhookType).
		Msg("webhook accepted")

	return record, nil
}

// normalizeIP strips the IPv4-in-IPv6 prefix some stacks report for
// dual-stack listeners, so "::ffff:127.0.0.1" matches "127.0.0.1".
func normalizeIP(ip string) string {
	return strings.TrimPrefix(strings.TrimSpace(ip), "::ffff:")
}
