package models

import (
	"encoding/json"
	"time"
)

// WebhookRecord is one accepted inbound webhook. Records are immutable once
// stored; they leave the store only through an explicit clear or age-based
// eviction.
type WebhookRecord struct {
	// ReceivedAt is the server-side arrival time of the webhook.
	ReceivedAt time.Time `json:"received_at"`

	// WebhookType is the vendor-assigned webhook category
	// (e.g. "TRANSACTIONS", "ITEM").
	WebhookType string `json:"webhook_type"`

	// ItemID is the vendor item the webhook refers to. Ingestion rejects
	// webhooks whose item is not present in the item registry.
	ItemID string `json:"item_id"`

	// OwnerKeyID is the API key id of the caller that owns ItemID,
	// resolved from the item registry at ingest time.
	OwnerKeyID string `json:"owner_key_id"`

	// Verified reports that the webhook passed source verification.
	Verified bool `json:"verified"`

	// Payload is the raw vendor JSON body as received.
	Payload json.RawMessage `json:"payload"`
}

// WebhookFilter is a combinable set of predicates for querying the webhook
// store. Zero-valued fields match everything; set fields are ANDed together.
type WebhookFilter struct {
	// WebhookType matches records with exactly this webhook type.
	WebhookType string

	// ItemID matches records for exactly this item.
	ItemID string

	// OwnerKeyID matches records owned by exactly this API key id.
	OwnerKeyID string

	// After keeps records with ReceivedAt strictly after this instant.
	After *time.Time

	// Before keeps records with ReceivedAt strictly before this instant.
	Before *time.Time

	// Limit caps the number of returned records; zero means no cap.
	Limit int
}

// WebhookStats is a point-in-time summary of the webhook store.
type WebhookStats struct {
	// Total is the number of live (non-evicted) records.
	Total int `json:"total"`

	// UniqueTypes is the number of distinct webhook types seen.
	UniqueTypes int `json:"unique_types"`

	// LastHourCount is the number of records received in the hour preceding
	// the stats call. Computed at call time, never cached.
	LastHourCount int `json:"last_hour_count"`

	// TypeBreakdown maps each webhook type to its record count.
	TypeBreakdown map[string]int `json:"type_breakdown"`

	// Recent holds the newest records, most recent first.
	Recent []WebhookRecord `json:"recent"`

	// Oldest is the arrival time of the oldest live record, nil when empty.
	Oldest *time.Time `json:"oldest,omitempty"`

	// Newest is the arrival time of the newest live record, nil when empty.
	Newest *time.Time `json:"newest,omitempty"`
}
