// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/fintest/plaidbox/internal/adapter"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/store"
	"github.com/fintest/plaidbox/models"
)

type linkService struct {
	gateway  adapter.VendorGateway
	registry store.ItemRegistry

	logger *logger.Logger
}

func NewLinkService(gateway adapter.VendorGateway, registry store.ItemRegistry, logger *logger.Logger) LinkService {
	return &linkService{gateway: gateway, registry: registry, logger: logger}
}

func (s *linkService) CreateLinkToken(ctx context.Context, creds models.CredentialRecord, req models.LinkTokenRequest) (models.LinkTokenResponse, error) {
	if req.ClientUserID == "" {
		return models.LinkTokenResponse{}, fmt.Errorf("%w: client_user_id is required", ErrValidation)
	}

	// harness-friendly defaults so the browser can send a minimal body
	if req.ClientName == "" {
		req.ClientName = "plaidbox"
	}
	if len(req.Products) == 0 {
		req.Products = []string{"auth"}
	}
	if len(req.CountryCodes) == 0 {
		req.CountryCodes = []string{"US"}
	}
	if req.Language == "" {
		req.Language = "en"
	}

	return s.gateway.CreateLinkToken(ctx, creds, req)
}

// Exchange trades the public token and immediately registers the resulting
// item, which is how webhook routing normally learns about an item.
func (s *linkService) Exchange(ctx context.Context, creds models.CredentialRecord, publicToken string) (models.ExchangeResponse, error) {
	if publicToken == "" {
		return models.ExchangeResponse{}, fmt.Errorf("%w: public_token is required", ErrValidation)
	}

	resp, err := s.gateway.ExchangePublicToken(ctx, creds, publicToken)
	if err != nil {
		return models.ExchangeResponse{}, err
	}

	if s.registry.Register(resp.ItemID, creds) {
		s.logger.Info().Str("item_id", resp.ItemID).Msg("item registered from token exchange")
	}

	return resp, nil
}

func (s *linkService) RegisterItem(ctx context.Context, creds models.CredentialRecord, itemID string) (bool, error) {
	if itemID == "" {
		return false, fmt.Errorf("%w: item_id is required", ErrValidation)
	}

	registered := s.registry.Register(itemID, creds)
	if registered {
		s.logger.Info().Str("item_id", itemID).Msg("item registered")
	}

	return registered, nil
}
