// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"

	"github.com/fintest/plaidbox/models"
)

// registryEntry is one live registration with its eviction deadline.
type registryEntry struct {
	record    models.ItemRecord
	expiresAt time.Time
}

// itemRegistry is the in-memory implementation of [ItemRegistry].
//
// The TTL matches the session TTL so that webhook routing does not outlive
// the credentials that created it. Lookup checks the per-entry deadline
// itself, so an entry is never routable past its TTL even while it waits
// for the next sweep pass.
type itemRegistry struct {
	mu      sync.Mutex
	entries map[string]registryEntry
	ttl     time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewItemRegistry constructs an empty [ItemRegistry] with the given
// per-entry TTL.
func NewItemRegistry(ttl time.Duration) ItemRegistry {
	return &itemRegistry{
		entries: make(map[string]registryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Register implements [ItemRegistry]. First writer wins: re-registering a
// known, unexpired item is a no-op so that a later, possibly stale or
// malicious, registration cannot hijack routing for the item.
func (r *itemRegistry) Register(itemID string, owner models.CredentialRecord) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if entry, ok := r.entries[itemID]; ok && entry.expiresAt.After(now) {
		return false
	}

	r.entries[itemID] = registryEntry{
		record: models.ItemRecord{
			ItemID:       itemID,
			Owner:        owner,
			RegisteredAt: now,
		},
		expiresAt: now.Add(r.ttl),
	}
	return true
}

func (r *itemRegistry) Lookup(itemID string) (models.ItemRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[itemID]
	if !ok || !entry.expiresAt.After(r.now()) {
		return models.ItemRecord{}, false
	}

	return entry.record, true
}

func (r *itemRegistry) Has(itemID string) bool {
	_, ok := r.Lookup(itemID)
	return ok
}

// Sweep implements [ItemRegistry]. It holds the lock only for the single
// map pass.
func (r *itemRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, entry := range r.entries {
		if !entry.expiresAt.After(now) {
			delete(r.entries, id)
			removed++
		}
	}

	return removed
}
