package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/aero-bulletin-etl/internal/adapter/airports"
	"github.com/couchcryptid/aero-bulletin-etl/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/aero-bulletin-etl/internal/adapter/kafka"
	"github.com/couchcryptid/aero-bulletin-etl/internal/config"
	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/couchcryptid/aero-bulletin-etl/internal/observability"
	"github.com/couchcryptid/aero-bulletin-etl/internal/pipeline"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// The static directory always answers first; the remote API is feature-flagged
	// via AIRPORT_LOOKUP_ENABLED.
	var directory domain.AirportDirectory = airports.NewStaticDirectory()
	if cfg.AirportLookupEnabled {
		client := airports.NewClient(cfg.AirportAPIURL, cfg.AirportAPITimeout, cfg.AirportAPIRPS, metrics, logger)
		directory = airports.Chain{directory, airports.NewCachedDirectory(client, cfg.AirportCacheSize, metrics)}
		metrics.AirportLookupEnabled.Set(1)
		logger.Info("remote airport lookup enabled",
			"url", cfg.AirportAPIURL,
			"cache_size", cfg.AirportCacheSize,
			"timeout", cfg.AirportAPITimeout,
			"rps", cfg.AirportAPIRPS,
		)
	} else {
		logger.Info("remote airport lookup disabled")
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(directory, metrics, logger)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize, cfg.DecodeWorkers)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, transformer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
