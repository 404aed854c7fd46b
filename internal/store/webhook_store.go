// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sort"
	"sync"
	"time"

	"github.com/fintest/plaidbox/models"
)

// recentStatsCount is how many of the newest records a stats snapshot
// carries in its Recent field.
const recentStatsCount = 10

// webhookStore is the in-memory implementation of [WebhookStorage].
//
// Eviction is piggybacked on every read and write path instead of running
// on a background timer: at the expected volume (hundreds of records in a
// test tool) a linear pass is cheap, and it keeps the store free of any
// goroutine of its own.
type webhookStore struct {
	mu        sync.Mutex
	records   []models.WebhookRecord
	retention time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewWebhookStore constructs an empty [WebhookStorage] that evicts records
// once now - ReceivedAt exceeds retention.
func NewWebhookStore(retention time.Duration) WebhookStorage {
	return &webhookStore{
		retention: retention,
		now:       time.Now,
	}
}

func (s *webhookStore) Append(record models.WebhookRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeLocked()
	s.records = append(s.records, record)
}

func (s *webhookStore) All() []models.WebhookRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeLocked()

	out := make([]models.WebhookRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *webhookStore) Filter(f models.WebhookFilter) []models.WebhookRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeLocked()

	out := make([]models.WebhookRecord, 0, len(s.records))
	for _, r := range s.records {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func (s *webhookStore) Stats() models.WebhookStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeLocked()

	stats := models.WebhookStats{
		TypeBreakdown: make(map[string]int),
		Recent:        []models.WebhookRecord{},
	}
	stats.Total = len(s.records)

	if stats.Total == 0 {
		return stats
	}

	hourAgo := s.now().Add(-time.Hour)
	oldest := s.records[0].ReceivedAt
	newest := s.records[0].ReceivedAt

	for _, r := range s.records {
		stats.TypeBreakdown[r.WebhookType]++
		if r.ReceivedAt.After(hourAgo) {
			stats.LastHourCount++
		}
		if r.ReceivedAt.Before(oldest) {
			oldest = r.ReceivedAt
		}
		if r.ReceivedAt.After(newest) {
			newest = r.ReceivedAt
		}
	}

	stats.UniqueTypes = len(stats.TypeBreakdown)
	stats.Oldest = &oldest
	stats.Newest = &newest

	recent := make([]models.WebhookRecord, len(s.records))
	copy(recent, s.records)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].ReceivedAt.After(recent[j].ReceivedAt)
	})
	if len(recent) > recentStatsCount {
		recent = recent[:recentStatsCount]
	}
	stats.Recent = recent

	return stats
}

func (s *webhookStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

func (s *webhookStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.purgeLocked()
}

func (s *webhookStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// purgeLocked drops every record older than the retention window. The
// caller must hold s.mu.
func (s *webhookStore) purgeLocked() int {
	cutoff := s.now().Add(-s.retention)

	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if r.ReceivedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept

	return removed
}

// matches reports whether record satisfies every set predicate of f.
// Predicates are ANDed; zero-valued predicates match everything.
func matches(r models.WebhookRecord, f models.WebhookFilter) bool {
	if f.WebhookType != "" && r.WebhookType != f.WebhookType {
		return false
	}
	if f.ItemID != "" && r.ItemID != f.ItemID {
		return false
	}
	if f.OwnerKeyID != "" && r.OwnerKeyID != f.OwnerKeyID {
		return false
	}
	if f.After != nil && !r.ReceivedAt.After(*f.After) {
		return false
	}
	if f.Before != nil && !r.ReceivedAt.Before(*f.Before) {
		return false
	}
	return true
}
