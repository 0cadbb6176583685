package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"bilancio/internal/amqp"
	"bilancio/internal/cli"
	applog "bilancio/internal/log"
	"bilancio/internal/sheets"
	"bilancio/internal/sheets/google"
	"bilancio/internal/sheets/memory"
	"bilancio/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(applog.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	var sheet sheets.RowAppender
	if cfg.GoogleSpreadsheetID != "" {
		gc, err := google.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", applog.FieldError, err)
			os.Exit(1)
		}
		sheet = gc
	} else {
		logger.Warn("No spreadsheet configured, exporting to in-memory store only")
		sheet = memory.New()
	}

	syncWorker := worker.NewSyncWorker(repo, sheet, cfg.SyncBatchSize)

	// Drain whatever was left pending before the previous shutdown.
	if err := syncWorker.ProcessPending(ctx); err != nil {
		logger.Error("Startup sweep failed", applog.FieldError, err)
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.AMQPURL != "" {
		g.Go(func() error {
			return amqp.ConsumeWithReconnect(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue,
				func(msg *amqp.TransactionSyncMessage) error {
					return syncWorker.HandleSyncMessage(ctx, msg)
				})
		})
	} else {
		logger.Info("AMQP disabled, relying on the periodic sweep only")
	}

	g.Go(func() error {
		return runPeriodicSweep(ctx, logger, syncWorker, cfg.SyncInterval)
	})

	logger.Info("Worker started",
		"db_path", cfg.SQLiteDBPath,
		"sync_interval", cfg.SyncInterval,
		"batch_size", cfg.SyncBatchSize,
		"amqp_enabled", cfg.AMQPURL != "")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}

// runPeriodicSweep retries pending transactions on a fixed interval. It is
// the only export path when AMQP is disabled, and the safety net for lost
// messages when it is not.
func runPeriodicSweep(ctx context.Context, logger *applog.Logger, w *worker.SyncWorker, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.ProcessPending(ctx); err != nil {
				// Transient storage errors shouldn't kill the worker.
				logger.ErrorContext(ctx, "Periodic sweep failed", applog.FieldError, err)
			}
		}
	}
}
