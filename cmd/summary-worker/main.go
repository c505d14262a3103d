package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"foodspend/internal/amqp"
	"foodspend/internal/backend"
	"foodspend/internal/clock"
	"foodspend/internal/config"
	applog "foodspend/internal/log"
	"foodspend/internal/services"
	"foodspend/internal/sheets"
	gsheet "foodspend/internal/sheets/google"
	"foodspend/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Component: applog.ComponentWorker,
	})
	applog.SetDefault(logger)

	logger.Info("Starting summary-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	if cfg.DataBackend == "memory" {
		logger.Warn("Memory backend holds no orders across processes; summaries will be empty unless the worker shares a sqlite database with the server")
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	result, err := backend.NewFactory(logger.Logger).CreateStore(backendCfg)
	if err != nil {
		logger.Error("Failed to initialize store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Store cleanup failed", "error", err)
			}
		}()
	}

	var events *amqp.Client
	if cfg.AMQPURL != "" {
		events, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, summaries will only be logged", "error", err)
			events = nil
		} else {
			defer events.Close()
			logger.Info("AMQP client initialized",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	var exporter sheets.SummaryWriter
	if cfg.SheetsExportEnabled {
		cli, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Warn("Failed to initialize Google Sheets export, continuing without it", "error", err)
		} else {
			exporter = cli
			logger.Info("Google Sheets summary export enabled")
		}
	}

	processor := services.NewSummaryProcessor(result.Store, clock.NewSystem(), events, exporter)
	summaryWorker := worker.NewSummaryWorker(processor, cfg.SummaryCheckInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return summaryWorker.Run(ctx)
	})

	logger.Info("Summary worker configured",
		"check_interval", cfg.SummaryCheckInterval,
		"backend", cfg.DataBackend,
		"amqp_enabled", events != nil,
		"sheets_export", exporter != nil)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Summary worker failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Summary worker shutdown complete")
}
