package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dc6084/backend/internal/config"
	"github.com/dc6084/backend/internal/db"
	httpapi "github.com/dc6084/backend/internal/http"
	"github.com/dc6084/backend/internal/service"
	"github.com/dc6084/backend/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "fpa-lpa-backend").Logger()

	ctx := context.Background()
	store, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect db")
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	// A persisted roster survives restarts; anything missing or malformed
	// falls back to the built-in sample.
	roster, uploadedAt, ok, err := store.LoadRoster(ctx)
	if err != nil || !ok {
		if err != nil {
			logger.Warn().Err(err).Msg("could not load persisted roster, using sample")
		}
		roster, uploadedAt = service.SampleRoster(), ""
	} else {
		logger.Info().Int("associates", len(roster)).Msg("loaded roster from storage")
	}
	appState := state.New(roster, uploadedAt)

	router := httpapi.Router(cfg, store, appState, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
