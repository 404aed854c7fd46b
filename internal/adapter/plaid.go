// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/models"
	"github.com/go-resty/resty/v2"
)

// plaidGateway talks to the Plaid sandbox REST API. Every Plaid call is a
// POST with client_id and secret inside the JSON body, so requests are built
// from an envelope that embeds the caller's credentials next to the
// call-specific fields.
type plaidGateway struct {
	client *resty.Client
	logger *logger.Logger
}

// NewPlaidGateway builds a [VendorGateway] against cfg.BaseURL.
func NewPlaidGateway(cfg config.Plaid, logger *logger.Logger) VendorGateway {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &plaidGateway{client: cli, logger: logger}
}

// vendorError is the error body Plaid returns on non-2xx responses.
type vendorError struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	RequestID    string `json:"request_id"`
}

// linkTokenBody is models.LinkTokenRequest in Plaid's wire shape, with the
// user block and credentials attached server-side.
type linkTokenBody struct {
	ClientID     string   `json:"client_id"`
	Secret       string   `json:"secret"`
	ClientName   string   `json:"client_name"`
	Products     []string `json:"products"`
	CountryCodes []string `json:"country_codes"`
	Language     string   `json:"language"`
	User         struct {
		ClientUserID string `json:"client_user_id"`
	} `json:"user"`
	Webhook     string `json:"webhook,omitempty"`
	RedirectURI string `json:"redirect_uri,omitempty"`
}

func (p *plaidGateway) CreateLinkToken(ctx context.Context, creds models.CredentialRecord, req models.LinkTokenRequest) (models.LinkTokenResponse, error) {
	body := linkTokenBody{
		ClientID:     creds.ClientID,
		Secret:       creds.Secret,
		ClientName:   req.ClientName,
		Products:     req.Products,
		CountryCodes: req.CountryCodes,
		Language:     req.Language,
		Webhook:      req.Webhook,
		RedirectURI:  req.RedirectURI,
	}
	body.User.ClientUserID = req.ClientUserID

	var result models.LinkTokenResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/link/token/create")
	if err != nil {
		return models.LinkTokenResponse{}, fmt.Errorf("%w: link token create: %v", ErrVendor, err)
	}
	if err = p.mapVendorError(resp, "link token create"); err != nil {
		return models.LinkTokenResponse{}, err
	}

	return result, nil
}

func (p *plaidGateway) ExchangePublicToken(ctx context.Context, creds models.CredentialRecord, publicToken string) (models.ExchangeResponse, error) {
	body := map[string]string{
		"client_id":    creds.ClientID,
		"secret":       creds.Secret,
		"public_token": publicToken,
	}

	var result models.ExchangeResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/item/public_token/exchange")
	if err != nil {
		return models.ExchangeResponse{}, fmt.Errorf("%w: public token exchange: %v", ErrVendor, err)
	}
	if err = p.mapVendorError(resp, "public token exchange"); err != nil {
		return models.ExchangeResponse{}, err
	}

	return result, nil
}

func (p *plaidGateway) GetAccounts(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	return p.itemRead(ctx, creds, accessToken, "/accounts/get")
}

func (p *plaidGateway) GetIdentity(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	return p.itemRead(ctx, creds, accessToken, "/identity/get")
}

func (p *plaidGateway) GetAuth(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	return p.itemRead(ctx, creds, accessToken, "/auth/get")
}

func (p *plaidGateway) GetBalance(ctx context.Context, creds models.CredentialRecord, accessToken string) (json.RawMessage, error) {
	return p.itemRead(ctx, creds, accessToken, "/accounts/balance/get")
}

// itemRead performs one of the uniform access-token product reads and hands
// the vendor payload back untouched.
func (p *plaidGateway) itemRead(ctx context.Context, creds models.CredentialRecord, accessToken string, path string) (json.RawMessage, error) {
	body := map[string]string{
		"client_id":    creds.ClientID,
		"secret":       creds.Secret,
		"access_token": accessToken,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrVendor, path, err)
	}
	if err = p.mapVendorError(resp, path); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

// ValidateCredentials issues a throwaway link token: the cheapest call that
// exercises client_id + secret without touching any item.
func (p *plaidGateway) ValidateCredentials(ctx context.Context, creds models.CredentialRecord) error {
	_, err := p.CreateLinkToken(ctx, creds, models.LinkTokenRequest{
		ClientName:   "credential check",
		Products:     []string{"auth"},
		CountryCodes: []string{"US"},
		Language:     "en",
		ClientUserID: "credential-check",
	})

	return err
}

// mapVendorError converts a non-2xx vendor response into [ErrVendor]. The
// full vendor error body is logged; only type and code ride on the error so
// vendor messages never leak to browsers.
func (p *plaidGateway) mapVendorError(resp *resty.Response, op string) error {
	if resp.IsSuccess() {
		return nil
	}

	var ve vendorError
	if err := json.Unmarshal(resp.Body(), &ve); err == nil && ve.ErrorCode != "" {
		p.logger.Warn().
			Str("op", op).
			Int("status", resp.StatusCode()).
			Str("error_type", ve.ErrorType).
			Str("error_code", ve.ErrorCode).
			Str("error_message", ve.ErrorMessage).
			Str("request_id", ve.RequestID).
			Msg("vendor call rejected")

		return fmt.Errorf("%w: %s: %s/%s", ErrVendor, op, ve.ErrorType, ve.ErrorCode)
	}

	p.logger.Warn().
		Str("op", op).
		Int("status", resp.StatusCode()).
		Msg("vendor call failed without a parseable error body")

	return fmt.Errorf("%w: %s: status %d", ErrVendor, op, resp.StatusCode())
}
