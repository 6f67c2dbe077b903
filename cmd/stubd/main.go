// Command stubd runs the seeded stub of the inventory backend, for local
// development of the app without the real backend.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/tienda/inventory-system/internal/stubapi"
	"github.com/tienda/inventory-system/pkg/logger"
)

type stubConfig struct {
	ListenAddr string `env:"STUB_LISTEN_ADDR, default=:8080"`
	JWTSecret  string `env:"JWT_SECRET,       default=dev-secret"`
	LogLevel   string `env:"LOG_LEVEL,        default=info"`
}

func main() {
	var cfg stubConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	e := stubapi.New(cfg.JWTSecret, log).Router()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(cfg.ListenAddr)
	}()
	log.Info().Str("addr", cfg.ListenAddr).Msg("stub backend started")
	log.Info().Str("owner", stubapi.SeedOwnerEmail).Str("customer", stubapi.SeedCustomerEmail).Msg("seeded accounts")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
}
