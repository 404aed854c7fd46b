// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/store"
	"github.com/fintest/plaidbox/models"
)

// defaultPageSize applies when a paginated list request names no limit.
const defaultPageSize = 20

type webhookQueryService struct {
	webhooks store.WebhookStorage

	logger *logger.Logger
}

func NewWebhookQueryService(webhooks store.WebhookStorage, logger *logger.Logger) WebhookQueryService {
	return &webhookQueryService{webhooks: webhooks, logger: logger}
}

// List filters and orders the feed newest-first. The store keeps arrival
// order; recency ordering is this layer's job. With page > 0 the limit acts
// as a page size, otherwise as a plain cap.
func (s *webhookQueryService) List(ctx context.Context, filter models.WebhookFilter, page int) models.WebhookListResponse {
	records := s.webhooks.Filter(filter)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ReceivedAt.After(records[j].ReceivedAt)
	})

	total := len(records)
	limit := filter.Limit

	if page > 0 {
		if limit <= 0 {
			limit = defaultPageSize
		}
		start := (page - 1) * limit
		if start >= total {
			records = nil
		} else {
			end := start + limit
			if end > total {
				end = total
			}
			records = records[start:end]
		}
	} else if limit > 0 && limit < total {
		records = records[:limit]
	}

	if records == nil {
		records = []models.WebhookRecord{}
	}

	return models.WebhookListResponse{
		Webhooks: records,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
}

func (s *webhookQueryService) Clear(ctx context.Context) {
	s.webhooks.Clear()
	s.logger.Info().Msg("webhook store cleared")
}

func (s *webhookQueryService) Stats(ctx context.Context) models.WebhookStats {
	return s.webhooks.Stats()
}

// ExportJSON serializes every live record, payload included.
func (s *webhookQueryService) ExportJSON(ctx context.Context) ([]byte, error) {
	raw, err := json.MarshalIndent(s.webhooks.All(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export webhooks: %w", err)
	}

	return raw, nil
}

// ExportCSV flattens every live record to one row. Payload bodies are left
// out so no JSON ends up embedded in a CSV cell.
func (s *webhookQueryService) ExportCSV(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"receivedAt", "webhookType", "itemId", "ownerKeyId", "verified"}); err != nil {
		return nil, fmt.Errorf("export webhooks csv: %w", err)
	}

	for _, record := range s.webhooks.All() {
		row := []string{
			record.ReceivedAt.Format(time.RFC3339),
			record.WebhookType,
			record.ItemID,
			record.OwnerKeyID,
			strconv.FormatBool(record.Verified),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export webhooks csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export webhooks csv: %w", err)
	}

	return buf.Bytes(), nil
}
