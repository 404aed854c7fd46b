package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fintest/plaidbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a store with a frozen clock the test can move.
func newTestStore(t *testing.T, retention time.Duration) (*webhookStore, *time.Time) {
	t.Helper()

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	s := NewWebhookStore(retention).(*webhookStore)
	s.now = func() time.Time { return now }

	return s, &now
}

func record(receivedAt time.Time, webhookType, itemID, ownerKeyID string) models.WebhookRecord {
	return models.WebhookRecord{
		ReceivedAt:  receivedAt,
		WebhookType: webhookType,
		ItemID:      itemID,
		OwnerKeyID:  ownerKeyID,
		Verified:    true,
		Payload:     json.RawMessage(`{}`),
	}
}

func TestWebhookStore_AppendAndAll(t *testing.T) {
	s, now := newTestStore(t, 24*time.Hour)

	s.Append(record(now.Add(-time.Minute), "TRANSACTIONS", "item-1", "key-a"))
	s.Append(record(*now, "ITEM", "item-2", "key-b"))

	all := s.All()
	require.Len(t, all, 2)
	// arrival order, not recency order
	assert.Equal(t, "TRANSACTIONS", all[0].WebhookType)
	assert.Equal(t, "ITEM", all[1].WebhookType)
}

func TestWebhookStore_EvictionBoundary(t *testing.T) {
	s, now := newTestStore(t, 24*time.Hour)

	s.Append(record(now.Add(-25*time.Hour), "OLD", "item-1", "key-a"))
	s.Append(record(now.Add(-time.Hour), "FRESH", "item-1", "key-a"))

	removed := s.PurgeExpired()
	assert.Equal(t, 1, removed)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "FRESH", all[0].WebhookType)
}

func TestWebhookStore_EvictionOnReadPath(t *testing.T) {
	s, now := newTestStore(t, 24*time.Hour)

	s.Append(record(now.Add(-25*time.Hour), "OLD", "item-1", "key-a"))

	// All() must evict without an explicit PurgeExpired call.
	assert.Empty(t, s.All())
	assert.Zero(t, s.Len())
}

func TestWebhookStore_Clear(t *testing.T) {
	s, now := newTestStore(t, 24*time.Hour)

	s.Append(record(*now, "A", "item-1", "key-a"))
	s.Clear()

	assert.Empty(t, s.All())

	// clearing an empty store is not an error
	s.Clear()
	assert.Empty(t, s.All())
}

func TestWebhookStore_FilterPredicatesAreANDed(t *testing.T) {
	s, now := newTestStore(t, 24*time.Hour)

	t0 := now.Add(-2 * time.Hour)
	s.Append(record(now.Add(-3*time.Hour), "A", "item-1", "key-a"))
	s.Append(record(now.Add(-1*time.Hour), "A", "item-1", "key-a"))
	s.Append(record(now.Add(-30*time.Minute), "B", "item-1", "key-a"))
	s.Append(record(now.Add(-15*time.Minute), "A", "item-2", "key-b"))

	got := s.Filter(models.WebhookFilter{WebhookType: "A", After: &t0})
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "A", r.WebhookType)
		assert.True(t, r.ReceivedAt.After(t0))
	}

	got = s.Filter(models.WebhookFilter{WebhookType: "A", After: &t0, ItemID: "item-2"})
	require.Len(t, got, 1)
	assert.Equal(t, "key-b", got[0].OwnerKeyID)
}

func TestWebhookStore_FilterBefore(t *testing.T) {
	s, now := newTestStore(t, 24*time.Hour)

	cut := now.Add(-time.Hour)
	s.Append(record(now.Add(-2*time.Hour), "A", "item-1", "key-a"))
	s.Append(record(*now, "A", "item-1", "key-a"))

	got := s.Filter(models.WebhookFilter{Before: &cut})
	require.Len(t, got, 1)
	assert.Equal(t, now.Add(-2*time.Hour), got[0].ReceivedAt)
}

func TestWebhookStore_Stats(t *testing.T) {
	s, now := newTestStore(t, 24*time.Hour)

	s.Append(record(now.Add(-2*time.Hour), "A", "item-1", "key-a"))
	s.Append(record(now.Add(-30*time.Minute), "A", "item-1", "key-a"))
	s.Append(record(now.Add(-10*time.Minute), "B", "item-2", "key-b"))

	stats := s.Stats()

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.UniqueTypes)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, stats.TypeBreakdown)
	assert.Equal(t, 2, stats.LastHourCount)

	require.NotNil(t, stats.Oldest)
	require.NotNil(t, stats.Newest)
	assert.Equal(t, now.Add(-2*time.Hour), *stats.Oldest)
	assert.Equal(t, now.Add(-10*time.Minute), *stats.Newest)

	// recent is most-recent-first
	require.Len(t, stats.Recent, 3)
	assert.Equal(t, "B", stats.Recent[0].WebhookType)
}

func TestWebhookStore_StatsEmpty(t *testing.T) {
	s, _ := newTestStore(t, 24*time.Hour)

	stats := s.Stats()

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.UniqueTypes)
	assert.Zero(t, stats.LastHourCount)
	assert.Nil(t, stats.Oldest)
	assert.Nil(t, stats.Newest)
	assert.Empty(t, stats.Recent)
}

func TestWebhookStore_StatsRecentCapped(t *testing.T) {
	s, now := newTestStore(t, 24*time.Hour)

	for i := 0; i < recentStatsCount+5; i++ {
		s.Append(record(now.Add(-time.Duration(i)*time.Minute), "A", "item-1", "key-a"))
	}

	stats := s.Stats()
	assert.Len(t, stats.Recent, recentStatsCount)
	assert.Equal(t, *now, stats.Recent[0].ReceivedAt)
}
