package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/edudesk/faqbot/internal/config"
	"github.com/edudesk/faqbot/internal/corpus"
	"github.com/edudesk/faqbot/internal/dialog"
	"github.com/edudesk/faqbot/internal/metrics"
	"github.com/edudesk/faqbot/internal/store"
)

// Build assembles the full server from configuration: corpus, engine,
// metrics, and the configured context store. The returned cleanup closes
// the store.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, func(), error) {
	entries, err := corpus.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load corpus: %w", err)
	}
	synonyms := corpus.BuildSynonymTable(entries)

	stats := metrics.NewCollector()
	engine := dialog.NewEngine(entries, synonyms, cfg.TopK, stats, logger)

	var contexts store.ContextStore
	switch cfg.StoreBackend {
	case "surrealdb":
		contexts, err = store.NewSurrealStore(ctx, store.SurrealConfig{
			URL:       cfg.SurrealDBURL,
			Namespace: cfg.SurrealDBNamespace,
			Database:  cfg.SurrealDBDatabase,
			Username:  cfg.SurrealDBUser,
			Password:  cfg.SurrealDBPass,
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("surrealdb context store: %w", err)
		}
	case "memory", "":
		contexts = store.NewMemoryStore()
	default:
		return nil, nil, fmt.Errorf("unknown context store backend %q", cfg.StoreBackend)
	}

	srv := New(engine, contexts, stats, logger)
	cleanup := func() {
		if err := contexts.Close(context.Background()); err != nil {
			logger.Error("failed to close context store", "error", err)
		}
	}
	return srv, cleanup, nil
}

// Run builds the server and serves HTTP until ctx is cancelled, then shuts
// down gracefully.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	buildCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	srv, cleanup, err := Build(buildCtx, cfg, logger)
	cancel()
	if err != nil {
		return err
	}
	defer cleanup()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("faqbot server listening", "url", fmt.Sprintf("http://localhost:%s/", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
