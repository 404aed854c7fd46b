package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintest/plaidbox/internal/adapter"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/models"
)

// itemReadService fronts the uniform vendor reads. It exists so handlers
// depend on a service interface rather than the gateway, and so the access
// token requirement is enforced in one place.
type itemReadService struct {
	gateway adapter.VendorGateway

	logger *logger.Logger
}

func NewItemReadService(gateway adapter.VendorGateway, logger *logger.Logger) ItemReadService {
	return &itemReadService{gateway: gateway, logger: logger}
}

func (s *itemReadService) GetAccounts(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if err := requireAccessToken(accessToken); err != nil {
		return nil, err
	}
	return s.gateway.GetAccounts(ctx, creds, accessToken)
}

func (s *itemReadService) GetIdentity(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if err := requireAccessToken(accessToken); err != nil {
		return nil, err
	}
	return s.gateway.GetIdentity(ctx, creds, accessToken)
}

func (s *itemReadService) GetAuth(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if err := requireAccessToken(accessToken); err != nil {
		return nil, err
	}
	return s.gateway.GetAuth(ctx, creds, accessToken)
}

func (s *itemReadService) GetBalance(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	if err := requireAccessToken(accessToken); err != nil {
		return nil, err
	}
	return s.gateway.GetBalance(ctx, creds, accessToken)
}

func requireAccessToken(accessToken string) error {
	if accessToken == "" {
		return fmt.Errorf("%w: access_token is required (link an item first)", ErrValidation)
	}
	return nil
}
