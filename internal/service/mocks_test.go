package service

import (
	"context"
	"encoding/json"

	"github.com/fintest/plaidbox/models"
)

// ─────────────────────────────────────────────
// Mock: adapter.VendorGateway
// ─────────────────────────────────────────────

type mockVendorGateway struct {
	createLinkTokenFn     func(ctx context.Context, creds models.CredentialRecord, req models.LinkTokenRequest) (models.LinkTokenResponse, error)
	exchangePublicTokenFn func(ctx context.Context, creds models.CredentialRecord, publicToken string) (models.ExchangeResponse, error)
	getAccountsFn         func(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	getIdentityFn         func(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	getAuthFn             func(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	getBalanceFn          func(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	validateCredentialsFn func(ctx context.Context, creds models.CredentialRecord) error
}

func (m *mockVendorGateway) CreateLinkToken(ctx context.Context, creds models.CredentialRecord, req models.LinkTokenRequest) (models.LinkTokenResponse, error) {
	if m.createLinkTokenFn != nil {
		return m.createLinkTokenFn(ctx, creds, req)
	}
	return models.LinkTokenResponse{}, nil
}

func (m *mockVendorGateway) ExchangePublicToken(ctx context.Context, creds models.CredentialRecord, publicToken string) (models.ExchangeResponse, error) {
	if m.exchangePublicTokenFn != nil {
		return m.exchangePublicTokenFn(ctx, creds, publicToken)
	}
	return models.ExchangeResponse{}, nil
}

func (m *mockVendorGateway) GetAccounts(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if m.getAccountsFn != nil {
		return m.getAccountsFn(ctx, creds, accessToken)
	}
	return nil, nil
}

func (m *mockVendorGateway) GetIdentity(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if m.getIdentityFn != nil {
		return m.getIdentityFn(ctx, creds, accessToken)
	}
	return nil, nil
}

func (m *mockVendorGateway) GetAuth(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if m.getAuthFn != nil {
		return m.getAuthFn(ctx, creds, accessToken)
	}
	return nil, nil
}

func (m *mockVendorGateway) GetBalance(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if m.getBalanceFn != nil {
		return m.getBalanceFn(ctx, creds, accessToken)
	}
	return nil, nil
}

func (m *mockVendorGateway) ValidateCredentials(ctx context.Context, creds models.CredentialRecord) error {
	if m.validateCredentialsFn != nil {
		return m.validateCredentialsFn(ctx, creds)
	}
	return nil
}
