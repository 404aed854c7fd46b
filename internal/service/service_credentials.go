package service

import (
	"context"
	"fmt"

	"github.com/fintest/plaidbox/internal/adapter"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/models"
)

type credentialService struct {
	gateway adapter.VendorGateway

	logger *logger.Logger
}

func NewCredentialService(gateway adapter.VendorGateway, logger *logger.Logger) CredentialService {
	return &credentialService{gateway: gateway, logger: logger}
}

// Validate checks the record's shape locally, then confirms the pair against
// the vendor with a throwaway probe. Secrets are never logged.
func (s *credentialService) Validate(ctx context.Context, creds models.CredentialRecord) error {
	if creds.ClientID == "" {
		return fmt.Errorf("%w: client_id is required", ErrValidation)
	}
	if creds.Secret == "" {
		return fmt.Errorf("%w: secret is required", ErrValidation)
	}
	if !creds.Environment.Valid() {
		return fmt.Errorf("%w: unsupported environment %q", ErrValidation, creds.Environment)
	}

	if err := s.gateway.ValidateCredentials(ctx, creds); err != nil {
		s.logger.Warn().Str("client_id", creds.ClientID).Msg("credential validation rejected by vendor")
		return err
	}

	s.logger.Info().Str("client_id", creds.ClientID).Msg("credentials validated")

	return nil
}
