// Package app provides the main application struct for centralized dependency
// management and lifecycle control of the backend server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"gostarter/config"
	"gostarter/internal/server"
	"gostarter/internal/storage"
)

// App represents the main application with all its dependencies.
// It provides centralized lifecycle management for all components.
type App struct {
	config  *config.Config
	storage *storage.Storage
	server  *server.Server

	shutdownMu sync.Mutex
	shutdown   bool
}

// New creates a new App with all dependencies initialized.
// The caller must call Shutdown to release resources.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &App{
		config: cfg,
	}

	// Connect storage unless explicitly disabled with an empty URL
	if cfg.Mongo.URL != "" {
		store, err := storage.New(ctx, storage.Config{
			URL:      cfg.Mongo.URL,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		app.storage = store
	}

	app.logStartupInfo()

	app.server = server.New(&server.Config{
		MasterKey:       cfg.Server.MasterKey,
		CORSOrigins:     cfg.CORS.Origins,
		MetricsEnabled:  cfg.Metrics.Enabled,
		MetricsEndpoint: cfg.Metrics.Endpoint,
		BodySizeLimit:   cfg.Server.BodySizeLimit,
	})

	return app, nil
}

// Storage returns the MongoDB storage handle, or nil when storage is disabled.
func (a *App) Storage() *storage.Storage {
	return a.storage
}

// Server returns the HTTP server.
func (a *App) Server() *server.Server {
	return a.server
}

// Start starts the HTTP server on the given address.
// This is a blocking call that returns when the server stops.
func (a *App) Start(addr string) error {
	if a.server == nil {
		return fmt.Errorf("server is not initialized")
	}
	slog.Info("starting server", "address", addr)
	if err := a.server.Start(addr); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			slog.Info("server stopped gracefully")
			return nil
		}
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Shutdown gracefully tears down app components in dependency order:
// the HTTP server first (stop accepting requests), then storage.
//
// Shutdown is idempotent and safe for repeated calls; after the first call,
// subsequent calls are no-ops. It attempts every close step, aggregates
// failures, and returns a joined error if any step fails.
func (a *App) Shutdown(ctx context.Context) error {
	a.shutdownMu.Lock()
	if a.shutdown {
		a.shutdownMu.Unlock()
		return nil
	}
	a.shutdown = true
	a.shutdownMu.Unlock()

	slog.Info("shutting down application...")

	var errs []error

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			slog.Error("server shutdown error", "error", err)
			errs = append(errs, fmt.Errorf("server shutdown: %w", err))
		}
	}

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			slog.Error("storage close error", "error", err)
			errs = append(errs, fmt.Errorf("storage close: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(errs...))
	}

	slog.Info("application shutdown complete")
	return nil
}

// logStartupInfo logs the application configuration on startup.
func (a *App) logStartupInfo() {
	cfg := a.config

	if cfg.Server.MasterKey == "" {
		slog.Warn("SECURITY WARNING: GOSTARTER_MASTER_KEY not set - server running in UNSAFE MODE",
			"security_risk", "unauthenticated access allowed",
			"recommendation", "set GOSTARTER_MASTER_KEY environment variable to secure this backend")
	} else {
		slog.Info("authentication enabled", "mode", "master_key")
	}

	if a.storage != nil {
		slog.Info("storage configured", "database", a.storage.Name())
	} else {
		slog.Info("storage disabled")
	}

	slog.Info("cors configured", "origins", cfg.CORS.Origins)

	if cfg.Metrics.Enabled {
		slog.Info("prometheus metrics enabled", "endpoint", cfg.Metrics.Endpoint)
	} else {
		slog.Info("prometheus metrics disabled")
	}
}
