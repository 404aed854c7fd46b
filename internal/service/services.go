package service

import (
	"github.com/fintest/plaidbox/internal/adapter"
	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/store"
)

type Services struct {
	WebhookIngestService WebhookIngestService
	WebhookQueryService  WebhookQueryService
	CredentialService    CredentialService
	LinkService          LinkService
	ItemReadService      ItemReadService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, gateway adapter.VendorGateway, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		WebhookIngestService: NewWebhookIngestService(cfg.Webhooks, storages.Items, storages.Webhooks, logger),
		WebhookQueryService:  NewWebhookQueryService(storages.Webhooks, logger),
		CredentialService:    NewCredentialService(gateway, logger),
		LinkService:          NewLinkService(gateway, storages.Items, logger),
		ItemReadService:      NewItemReadService(gateway, logger),
		AppInfoService:       appInfo,
	}, nil
}
