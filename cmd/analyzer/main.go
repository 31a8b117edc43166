package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/sounding-analysis/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/sounding-analysis/internal/adapter/kafka"
	"github.com/couchcryptid/sounding-analysis/internal/config"
	"github.com/couchcryptid/sounding-analysis/internal/observability"
	"github.com/couchcryptid/sounding-analysis/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)

	var transformer pipeline.Transformer = pipeline.NewTransformer(logger, metrics)
	if cfg.AnalysisCacheSize > 0 {
		transformer = pipeline.NewCachedTransformer(transformer, cfg.AnalysisCacheSize, metrics)
		logger.Info("analysis cache enabled", "size", cfg.AnalysisCacheSize)
	} else {
		logger.Info("analysis cache disabled")
	}

	p := pipeline.New(reader, transformer, writer, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start analysis pipeline.
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
