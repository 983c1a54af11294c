package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	httpadapter "github.com/naruebaet/thai-plate-prophecy/internal/adapter/http"
	kafkaadapter "github.com/naruebaet/thai-plate-prophecy/internal/adapter/kafka"
	"github.com/naruebaet/thai-plate-prophecy/internal/config"
	"github.com/naruebaet/thai-plate-prophecy/internal/domain"
	"github.com/naruebaet/thai-plate-prophecy/internal/observability"
	"github.com/naruebaet/thai-plate-prophecy/internal/pipeline"
	"github.com/naruebaet/thai-plate-prophecy/internal/refdata"
)

// alwaysReady serves readiness when the service runs without Kafka.
type alwaysReady struct{}

func (alwaysReady) CheckReadiness(context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ref, err := refdata.Load(cfg.RefDataPath)
	if err != nil {
		logger.Error("failed to load reference data", "error", err, "path", cfg.RefDataPath)
		os.Exit(1)
	}
	logger.Info("reference data loaded",
		"path", cfg.RefDataPath,
		"characters", len(ref.CharValues),
		"groups", len(ref.LuckyPointGroups),
	)
	prophet := domain.NewProphet(ref)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		reader *kafkaadapter.Reader
		writer *kafkaadapter.Writer
		p      *pipeline.Pipeline
	)
	var ready sharedobs.ReadinessChecker = alwaysReady{}

	if cfg.KafkaEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		transformer := pipeline.NewTransformer(prophet, logger, metrics)
		p = pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = p
	} else {
		logger.Info("kafka pipeline disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, prophet, ready, metrics, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	// Start advice pipeline.
	if p != nil {
		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
