// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/logger"
)

type server struct {
	httpServer *httpServer

	logger *logger.Logger
}

// NewServer wraps the router in an HTTP server configured from cfg.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoAddressConfigured
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM/SIGINT/SIGQUIT arrives, then shuts down
// gracefully.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
