// Command tienda runs the inventory app: it owns the local session,
// talks to the inventory backend through the API normalizer and serves
// the app's screens.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tienda/inventory-system/internal/api"
	"github.com/tienda/inventory-system/internal/auth"
	"github.com/tienda/inventory-system/internal/client"
	"github.com/tienda/inventory-system/internal/core/ports"
	"github.com/tienda/inventory-system/internal/infrastructure/config"
	filedb "github.com/tienda/inventory-system/internal/infrastructure/db/file"
	redisdb "github.com/tienda/inventory-system/internal/infrastructure/db/redis"
	"github.com/tienda/inventory-system/internal/metrics"
	"github.com/tienda/inventory-system/internal/session"
	"github.com/tienda/inventory-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx := context.Background()

	var sessions ports.SessionRepository
	switch cfg.Session.Backend {
	case "redis":
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer rdb.Close()
		sessions = redisdb.NewSessionRepository(rdb)
	default:
		sessions = filedb.NewSessionRepository(cfg.Session.File)
	}

	store := session.NewStore(sessions, log)
	gate := auth.NewGate(store)

	backend := client.New(cfg.BackendURL, store, log,
		client.WithUnauthorizedHook(func() {
			// Expired or revoked credential: drop the session once,
			// centrally, instead of per call site.
			if gate.IsAuthenticated() {
				if err := gate.Logout(context.Background()); err != nil {
					log.Error().Err(err).Msg("logout after authorization denial")
					return
				}
				metrics.SessionTransitionsTotal.WithLabelValues("expired").Inc()
				log.Info().Msg("session expired, logged out")
			}
		}),
	)

	// Restore the persisted session off the serving path; the route
	// guard answers "starting" until this resolves.
	go func() {
		if err := gate.Resolve(ctx); err != nil {
			log.Error().Err(err).Msg("session restore failed")
			return
		}
		log.Info().Str("state", gate.Current().String()).Msg("session restored")
	}()

	e := api.NewRouter(api.Deps{
		Gate:       gate,
		API:        backend,
		Sessions:   sessions,
		BackendURL: cfg.BackendURL,
		Log:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(cfg.ListenAddr)
	}()
	log.Info().Str("addr", cfg.ListenAddr).Str("backend", cfg.BackendURL).Msg("tienda app started")

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("server exited cleanly")
}
