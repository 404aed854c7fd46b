package adapter

import (
	"context"
	"encoding/json"

	"github.com/fintest/plaidbox/models"
)

// VendorGateway is the narrow view of the Plaid REST API the harness needs.
// Credentials travel per call; the gateway never caches them.
type VendorGateway interface {
	// CreateLinkToken issues a link token for one Link widget session.
	CreateLinkToken(ctx context.Context, creds models.CredentialRecord, req models.LinkTokenRequest) (models.LinkTokenResponse, error)

	// ExchangePublicToken trades a public token from a completed Link flow
	// for the long-lived access token and the item id.
	ExchangePublicToken(ctx context.Context, creds models.CredentialRecord, publicToken string) (models.ExchangeResponse, error)

	// GetAccounts returns the raw /accounts/get payload for the item.
	GetAccounts(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)

	// GetIdentity returns the raw /identity/get payload for the item.
	GetIdentity(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)

	// GetAuth returns the raw /auth/get payload for the item.
	GetAuth(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)

	// GetBalance returns the raw /accounts/balance/get payload for the item.
	GetBalance(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)

	// ValidateCredentials probes the vendor with creds and reports whether
	// the vendor accepts them.
	ValidateCredentials(ctx context.Context, creds models.CredentialRecord) error
}
