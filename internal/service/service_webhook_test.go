package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/store"
	"github.com/fintest/plaidbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryFixture(t *testing.T) (WebhookQueryService, store.WebhookStorage) {
	t.Helper()
	webhooks := store.NewWebhookStore(24 * time.Hour)
	return NewWebhookQueryService(webhooks, logger.Nop()), webhooks
}

func seedRecords(webhooks store.WebhookStorage, n int) {
	base := time.Now().Add(-time.Duration(n) * time.Minute)
	for i := 0; i < n; i++ {
		webhooks.Append(models.WebhookRecord{
			ReceivedAt:  base.Add(time.Duration(i) * time.Minute),
			WebhookType: "TRANSACTIONS",
			ItemID:      "item-1",
			OwnerKeyID:  "client-a",
			Verified:    true,
		})
	}
}

func TestList_NewestFirst(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	seedRecords(webhooks, 3)

	resp := svc.List(context.Background(), models.WebhookFilter{}, 0)

	require.Len(t, resp.Webhooks, 3)
	assert.Equal(t, 3, resp.Total)
	assert.True(t, resp.Webhooks[0].ReceivedAt.After(resp.Webhooks[1].ReceivedAt))
	assert.True(t, resp.Webhooks[1].ReceivedAt.After(resp.Webhooks[2].ReceivedAt))
}

func TestList_LimitWithoutPagination(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	seedRecords(webhooks, 5)

	resp := svc.List(context.Background(), models.WebhookFilter{Limit: 2}, 0)

	assert.Len(t, resp.Webhooks, 2)
	assert.Equal(t, 5, resp.Total, "total reports the match count, not the page size")
}

func TestList_Pagination(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	seedRecords(webhooks, 5)

	first := svc.List(context.Background(), models.WebhookFilter{Limit: 2}, 1)
	second := svc.List(context.Background(), models.WebhookFilter{Limit: 2}, 2)
	third := svc.List(context.Background(), models.WebhookFilter{Limit: 2}, 3)
	beyond := svc.List(context.Background(), models.WebhookFilter{Limit: 2}, 4)

	assert.Len(t, first.Webhooks, 2)
	assert.Len(t, second.Webhooks, 2)
	assert.Len(t, third.Webhooks, 1)
	assert.Empty(t, beyond.Webhooks)

	// pages must not overlap
	assert.True(t, first.Webhooks[1].ReceivedAt.After(second.Webhooks[0].ReceivedAt))
}

func TestList_PaginationDefaultsPageSize(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	seedRecords(webhooks, defaultPageSize+5)

	resp := svc.List(context.Background(), models.WebhookFilter{}, 1)

	assert.Len(t, resp.Webhooks, defaultPageSize)
	assert.Equal(t, defaultPageSize, resp.Limit)
}

func TestList_FilterByType(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	webhooks.Append(models.WebhookRecord{ReceivedAt: time.Now(), WebhookType: "A", ItemID: "i1"})
	webhooks.Append(models.WebhookRecord{ReceivedAt: time.Now(), WebhookType: "B", ItemID: "i1"})

	resp := svc.List(context.Background(), models.WebhookFilter{WebhookType: "A"}, 0)

	require.Len(t, resp.Webhooks, 1)
	assert.Equal(t, "A", resp.Webhooks[0].WebhookType)
}

func TestClear(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	seedRecords(webhooks, 3)

	svc.Clear(context.Background())

	assert.Zero(t, webhooks.Len())
}

func TestStats_PassesThrough(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	webhooks.Append(models.WebhookRecord{ReceivedAt: time.Now(), WebhookType: "A"})
	webhooks.Append(models.WebhookRecord{ReceivedAt: time.Now(), WebhookType: "A"})
	webhooks.Append(models.WebhookRecord{ReceivedAt: time.Now(), WebhookType: "B"})

	stats := svc.Stats(context.Background())

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.UniqueTypes)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, stats.TypeBreakdown)
}

func TestExportJSON(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	webhooks.Append(models.WebhookRecord{
		ReceivedAt:  time.Now(),
		WebhookType: "A",
		ItemID:      "item-1",
		Verified:    true,
		Payload:     json.RawMessage(`{"item_id":"item-1"}`),
	})

	raw, err := svc.ExportJSON(context.Background())
	require.NoError(t, err)

	var records []models.WebhookRecord
	require.NoError(t, json.Unmarshal(raw, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "item-1", records[0].ItemID)
	assert.JSONEq(t, `{"item_id":"item-1"}`, string(records[0].Payload))
}

func TestExportCSV(t *testing.T) {
	svc, webhooks := newQueryFixture(t)
	received := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	webhooks.Append(models.WebhookRecord{
		ReceivedAt:  received,
		WebhookType: "TRANSACTIONS",
		ItemID:      "item-1",
		OwnerKeyID:  "client-a",
		Verified:    true,
		Payload:     json.RawMessage(`{"nested":"json"}`),
	})

	raw, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "receivedAt,webhookType,itemId,ownerKeyId,verified", lines[0])
	assert.Equal(t, "2026-08-27T10:00:00Z,TRANSACTIONS,item-1,client-a,true", lines[1])
	assert.NotContains(t, string(raw), "nested", "payload bodies stay out of the CSV")
}

func TestExportCSV_EmptyStoreStillHasHeader(t *testing.T) {
	svc, _ := newQueryFixture(t)

	raw, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "receivedAt,webhookType,itemId,ownerKeyId,verified", strings.TrimSpace(string(raw)))
}
