// Package store holds the harness's in-memory state: the time-bounded
// webhook store and the item registry that routes inbound webhooks to the
// credentials that own them. Nothing in this package survives a process
// restart; that is a documented property of the harness, not a bug.
package store

import (
	"github.com/fintest/plaidbox/models"
)

// WebhookStorage is an append-only, time-bounded collection of received
// webhook records. Records are kept in arrival order; consumers that want
// recency sort explicitly by ReceivedAt. Implementations must be safe for
// concurrent use.
type WebhookStorage interface {
	// Append stores one record and opportunistically evicts expired ones.
	Append(record models.WebhookRecord)

	// All returns a copy of every live record in arrival order, evicting
	// expired records first.
	All() []models.WebhookRecord

	// Filter returns a copy of the live records matching every set
	// predicate of f, in arrival order. The filter's Limit field is not
	// applied here; limiting happens after the caller has ordered the
	// result.
	Filter(f models.WebhookFilter) []models.WebhookRecord

	// Stats summarizes the live records at call time.
	Stats() models.WebhookStats

	// Clear removes every record.
	Clear()

	// PurgeExpired evicts records older than the retention window and
	// returns how many were removed.
	PurgeExpired() int

	// Len reports the number of live records without triggering eviction.
	Len() int
}

// ItemRegistry maps vendor item identifiers to the credentials that linked
// them. Entries expire after a TTL; a periodic sweep evicts them. First
// writer wins: a later registration for a known item never replaces the
// original owner. Implementations must be safe for concurrent use.
type ItemRegistry interface {
	// Register stores the mapping unless the item is already known.
	// Returns true when the item was newly registered.
	Register(itemID string, owner models.CredentialRecord) bool

	// Lookup returns the registration for itemID. Expired entries are
	// treated as absent even before the sweeper has removed them.
	Lookup(itemID string) (models.ItemRecord, bool)

	// Has reports whether itemID is currently routable.
	Has(itemID string) bool

	// Sweep evicts expired entries and returns how many were removed.
	Sweep() int
}
