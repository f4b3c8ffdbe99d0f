package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/handler"
	"backoffice/internal/idgen"
	"backoffice/internal/kv"
	"backoffice/internal/router"
	"backoffice/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("driver", cfg.Storage.Driver).Msg("starting back-office API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the durable key-value store
	var storage kv.Store
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		storage, err = kv.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

	case config.DriverPostgres:
		pool, poolErr := database.NewPool(ctx, cfg.Storage.Postgres, logger)
		if poolErr != nil {
			return fmt.Errorf("failed to initialize database: %w", poolErr)
		}
		defer pool.Close()

		storage, err = kv.NewPostgres(ctx, pool)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

	case config.DriverMemory:
		logger.Warn().Msg("memory storage selected, state will not survive a restart")
		storage = kv.NewMemory()
	}
	defer storage.Close()

	// Wire the data layer
	ids := idgen.New(storage, logger)
	entityStore := store.New(ctx, storage, ids, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(entityStore, logger)
	orderHandler := handler.NewOrderHandler(entityStore, logger)
	promoHandler := handler.NewPromoHandler(entityStore, logger)
	dashboardHandler := handler.NewDashboardHandler(entityStore, time.Now, logger)

	mux := router.New(productHandler, orderHandler, promoHandler, dashboardHandler, cfg.Auth.APIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
