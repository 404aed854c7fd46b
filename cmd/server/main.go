package main

import (
	"context"
	"fmt"

	"github.com/fintest/plaidbox/internal/adapter"
	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/crypto"
	handler "github.com/fintest/plaidbox/internal/handler/http"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/server"
	"github.com/fintest/plaidbox/internal/service"
	"github.com/fintest/plaidbox/internal/session"
	"github.com/fintest/plaidbox/internal/store"
	"github.com/fintest/plaidbox/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("plaidbox-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.Webhooks)

	files, err := session.NewFileStore(cfg.Session)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}

	credentials := session.NewCredentialStore(
		files,
		crypto.NewCredentialCodec(cfg.App.SecretKey),
		cfg.App,
		cfg.Session,
		log,
	)

	gateway := adapter.NewPlaidGateway(cfg.Plaid, log)

	services, err := service.NewServices(storages, gateway, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers := handler.NewHandler(services, credentials, *cfg, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workers.NewWorkers(storages, files, *cfg, log).Run(ctx)

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
