package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brand-pricing/internal/config"
	"brand-pricing/internal/database"
	"brand-pricing/internal/engine"
	"brand-pricing/internal/handler"
	"brand-pricing/internal/repository"
	"brand-pricing/internal/router"
	"brand-pricing/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting brand-pricing API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The engine is the authoritative store; the database, when enabled,
	// provides durability across restarts.
	store := engine.NewStore(logger)

	var repo repository.CatalogRepository
	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		repo = repository.NewCatalogRepository(pool, logger)
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}

		brands, err := repo.LoadBrands(ctx)
		if err != nil {
			return fmt.Errorf("failed to load brands: %w", err)
		}
		products, err := repo.LoadProducts(ctx)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		if err := store.Load(brands, products); err != nil {
			return fmt.Errorf("failed to restore catalog state: %w", err)
		}

		logger.Info().
			Int("brands", len(brands)).
			Int("products", len(products)).
			Msg("catalog state restored from database")
	} else {
		logger.Info().Msg("running with in-memory catalog only (database disabled)")
	}

	if cfg.Seed.DemoData && len(store.ListBrands()) == 0 {
		if err := engine.SeedDemoData(store); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.Info().Msg("demo price matrix seeded")
	}

	solver := engine.NewSolver(store, logger)

	// Initialize services
	adminService := service.NewAdminService(store, repo, logger)
	pricingService := service.NewPricingService(store, solver, logger)

	// Initialize HTTP handlers
	brandHandler := handler.NewBrandHandler(adminService, logger)
	productHandler := handler.NewProductHandler(adminService, logger)
	pricingHandler := handler.NewPricingHandler(pricingService, logger)

	// Initialize router
	mux := router.New(brandHandler, productHandler, pricingHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
