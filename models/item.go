package models

import "time"

// ItemRecord maps a vendor-assigned item identifier to the credentials of
// the caller that linked it. It exists solely to route inbound webhooks back
// to the right tenant context.
type ItemRecord struct {
	// ItemID is the opaque, vendor-assigned identifier of one linked bank
	// connection. Unique within the registry.
	ItemID string `json:"item_id"`

	// Owner is a reference to the credentials that produced the item.
	Owner CredentialRecord `json:"-"`

	// RegisteredAt is when the item was first registered. Registration is
	// first-writer-wins; later registrations never move this timestamp.
	RegisteredAt time.Time `json:"registered_at"`
}
