package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MikeSquared-Agency/Shortlist/internal/api"
	"github.com/MikeSquared-Agency/Shortlist/internal/config"
	"github.com/MikeSquared-Agency/Shortlist/internal/hermes"
	"github.com/MikeSquared-Agency/Shortlist/internal/metrics"
	"github.com/MikeSquared-Agency/Shortlist/internal/rubric"
	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage
	backend, err := store.OpenBackend(ctx, store.Driver(cfg.Storage.Driver), cfg.Storage.DSN)
	if err != nil {
		logger.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	logger.Info("storage ready", "driver", cfg.Storage.Driver)

	m := metrics.New()
	opts := []store.Option{store.WithFallbackHook(m.StorageFallback)}

	// Hermes (optional)
	if cfg.Hermes.URL != "" {
		hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to hermes, running without events", "error", err)
		} else {
			defer hc.Close()
			opts = append(opts, store.WithPublisher(hc))
			logger.Info("connected to hermes")

			if err := hermes.OnCollectionSaved(hc, logger, func(evt hermes.CollectionSavedEvent) {
				logger.Debug("collection saved", "collection", evt.Collection, "count", evt.Count, "event_id", evt.EventID)
			}); err != nil {
				logger.Warn("failed to subscribe to save events", "error", err)
			}
		}
	}

	st := store.NewCollectionStore(backend, logger, opts...)
	defer st.Close()
	st.Subscribe(m.ObserveSave)

	svc := rubric.NewService(st, cfg.Scoring.DefaultRating, logger)

	// API server
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.NewRouter(svc, m, cfg.Server.RateLimitPerMinute, logger),
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(m),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
