// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tmarchal/vitrine/internal/config"
	"github.com/tmarchal/vitrine/internal/db"
	"github.com/tmarchal/vitrine/internal/jobs"
	"github.com/tmarchal/vitrine/internal/theme"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func configPath() string {
	if path, ok := os.LookupEnv("CONFIG_PATH"); ok {
		return path
	}
	return "config/config.yaml"
}

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	store := theme.NewSQLStore(database.Queries)
	resolver := theme.NewResolver(store, theme.WithCacheTTL(cfg.Theme.ResolverCacheTTL))

	server := newServer(cfg, database.Queries, store, resolver)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	sweeper, err := jobs.StartCacheSweeper(resolver, cfg.Theme.SweepInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start cache sweeper")
	}

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := sweeper.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("Cache sweeper shutdown failed")
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
