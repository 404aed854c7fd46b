package http

import (
	"context"
	"encoding/json"

	"github.com/fintest/plaidbox/models"
)

// ─────────────────────────────────────────────
// Mock service.WebhookIngestService
// ─────────────────────────────────────────────

type mockIngestService struct {
	ingestFn func(ctx context.Context, sourceIP string, rawBody []byte) (models.WebhookRecord, error)
}

func (m *mockIngestService) Ingest(ctx context.Context, sourceIP string, rawBody []byte) (models.WebhookRecord, error) {
	if m.ingestFn != nil {
		return m.ingestFn(ctx, sourceIP, rawBody)
	}
	return models.WebhookRecord{}, nil
}

// ─────────────────────────────────────────────
// Mock service.WebhookQueryService
// ─────────────────────────────────────────────

type mockQueryService struct {
	listFn       func(ctx context.Context, filter models.WebhookFilter, page int) models.WebhookListResponse
	clearFn      func(ctx context.Context)
	statsFn      func(ctx context.Context) models.WebhookStats
	exportJSONFn func(ctx context.Context) ([]byte, error)
	exportCSVFn  func(ctx context.Context) ([]byte, error)
}

func (m *mockQueryService) List(ctx context.Context, filter models.WebhookFilter, page int) models.WebhookListResponse {
	if m.listFn != nil {
		return m.listFn(ctx, filter, page)
	}
	return models.WebhookListResponse{Webhooks: []models.WebhookRecord{}}
}

func (m *mockQueryService) Clear(ctx context.Context) {
	if m.clearFn != nil {
		m.clearFn(ctx)
	}
}

func (m *mockQueryService) Stats(ctx context.Context) models.WebhookStats {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.WebhookStats{}
}

func (m *mockQueryService) ExportJSON(ctx context.Context) ([]byte, error) {
	if m.exportJSONFn != nil {
		return m.exportJSONFn(ctx)
	}
	return []byte("[]"), nil
}

func (m *mockQueryService) ExportCSV(ctx context.Context) ([]byte, error) {
	if m.exportCSVFn != nil {
		return m.exportCSVFn(ctx)
	}
	return []byte("receivedAt,webhookType,itemId,ownerKeyId,verified\n"), nil
}

// ─────────────────────────────────────────────
// Mock service.CredentialService
// ─────────────────────────────────────────────

type mockCredentialService struct {
	validateFn func(ctx context.Context, creds models.CredentialRecord) error
}

func (m *mockCredentialService) Validate(ctx context.Context, creds models.CredentialRecord) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, creds)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock service.LinkService
// ─────────────────────────────────────────────

type mockLinkService struct {
	createLinkTokenFn func(ctx context.Context, creds models.CredentialRecord, req models.LinkTokenRequest) (models.LinkTokenResponse, error)
	exchangeFn        func(ctx context.Context, creds models.CredentialRecord, publicToken string) (models.ExchangeResponse, error)
	registerItemFn    func(ctx context.Context, creds models.CredentialRecord, itemID string) (bool, error)
}

func (m *mockLinkService) CreateLinkToken(ctx context.Context, creds models.CredentialRecord, req models.LinkTokenRequest) (models.LinkTokenResponse, error) {
	if m.createLinkTokenFn != nil {
		return m.createLinkTokenFn(ctx, creds, req)
	}
	return models.LinkTokenResponse{}, nil
}

func (m *mockLinkService) Exchange(ctx context.Context, creds models.CredentialRecord, publicToken string) (models.ExchangeResponse, error) {
	if m.exchangeFn != nil {
		return m.exchangeFn(ctx, creds, publicToken)
	}
	return models.ExchangeResponse{}, nil
}

func (m *mockLinkService) RegisterItem(ctx context.Context, creds models.CredentialRecord, itemID string) (bool, error) {
	if m.registerItemFn != nil {
		return m.registerItemFn(ctx, creds, itemID)
	}
	return true, nil
}

// ─────────────────────────────────────────────
// Mock service.ItemReadService
// ─────────────────────────────────────────────

type mockItemReadService struct {
	getAccountsFn func(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	getIdentityFn func(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	getAuthFn     func(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
	getBalanceFn  func(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error)
}

func (m *mockItemReadService) GetAccounts(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if m.getAccountsFn != nil {
		return m.getAccountsFn(ctx, creds, accessToken)
	}
	return json.RawMessage(`{}`), nil
}

func (m *mockItemReadService) GetIdentity(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if m.getIdentityFn != nil {
		return m.getIdentityFn(ctx, creds, accessToken)
	}
	return json.RawMessage(`{}`), nil
}

func (m *mockItemReadService) GetAuth(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if m.getAuthFn != nil {
		return m.getAuthFn(ctx, creds, accessToken)
	}
	return json.RawMessage(`{}`), nil
}

func (m *mockItemReadService) GetBalance(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if m.getBalanceFn != nil {
		return m.getBalanceFn(ctx, creds, accessToken)
	}
	return json.RawMessage(`{}`), nil
}

// ─────────────────────────────────────────────
// Mock service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}
