package service

import (
	"context"
	"encoding/json"

	"github.com/fintest/plaidbox/models"
)

// WebhookIngestService accepts inbound vendor webhooks after provenance and
// routing checks.
type WebhookIngestService interface {
	// Ingest verifies sourceIP against the allow-list, parses rawBody, and
	// checks the payload's item_id against the registry before storing the
	// record. Errors: [ErrForbiddenSource], [ErrMalformedPayload],
	// [ErrUnknownItem].
	Ingest(ctx context.Context, sourceIP string, rawBody []byte) (models.WebhookRecord, error)
}

// WebhookQueryService serves the stored webhook feed.
type WebhookQueryService interface {
	// List returns the records matching filter, newest first, paginated
	// when page > 0.
	List(ctx context.Context, filter models.WebhookFilter, page int) models.WebhookListResponse

	// Clear drops every stored record.
	Clear(ctx context.Context)

	// Stats summarizes the live records.
	Stats(ctx context.Context) models.WebhookStats

	// ExportJSON serializes the full live record set.
	ExportJSON(ctx context.Context) ([]byte, error)

	// ExportCSV flattens the live records to CSV, omitting payload bodies.
	ExportCSV(ctx context.Context) ([]byte, error)
}

// CredentialService validates caller-supplied vendor credentials.
type CredentialService interface {
	// Validate checks shape locally, then probes the vendor. Errors:
	// [ErrValidation] or the gateway's vendor error.
	Validate(ctx context.Context, creds models.CredentialRecord) error
}

// LinkService drives the vendor Link flow and item registration.
type LinkService interface {
	// CreateLinkToken issues a link token on the caller's credentials.
	CreateLinkToken(ctx context.Context, creds models.CredentialRecord, req models.LinkTokenRequest) (models.LinkTokenResponse, error)

	// Exchange trades a public token for an access token and registers the
	// resulting item so its webhooks become routable.
	Exchange(ctx context.Context, creds models.CredentialRecord, publicToken string) (models.ExchangeResponse, error)

	// RegisterItem registers a known item id directly. Returns false when
	// the item is already registered (first writer wins).
	RegisterItem(ctx context.Context, creds models.CredentialRecord, itemID string) (bool, error)
}

// ItemReadService proxies the per-item vendor reads.
type ItemReadService interface {
	GetAccounts(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	GetIdentity(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	GetAuth(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	GetBalance(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
