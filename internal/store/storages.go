package store

import (
	"github.com/fintest/plaidbox/internal/config"
)

// Storages aggregates every store the harness owns. Constructed once at
// process start and injected into the services; tests construct a fresh
// instance per case instead of sharing process-wide singletons.
type Storages struct {
	Webhooks WebhookStorage
	Items    ItemRegistry
}

// NewStorages wires the in-memory stores from the webhook configuration.
func NewStorages(cfg config.Webhooks) *Storages {
	return &Storages{
		Webhooks: NewWebhookStore(cfg.Retention),
		Items:    NewItemRegistry(cfg.RegistryTTL),
	}
}
