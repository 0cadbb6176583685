package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"bilancio/internal/advice"
	"bilancio/internal/amqp"
	"bilancio/internal/cli"
	"bilancio/internal/config"
	"bilancio/internal/core"
	"bilancio/internal/csvio"
	applog "bilancio/internal/log"
	"bilancio/internal/prompt"
	"bilancio/internal/report"
	"bilancio/internal/storage"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	prompter := prompt.New(os.Stdin, os.Stdout, cfg.PromptAttempts)

	path := cfg.CSVPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	classifier := core.NewClassifier()
	path, txns, err := loadWithRetry(prompter, path, classifier.Classify)
	if err != nil {
		logger.Error("Failed to load transactions", applog.FieldError, err, applog.FieldPath, path)
		os.Exit(1)
	}
	logger.Info("Transactions loaded", applog.FieldPath, path, applog.FieldCount, len(txns))

	summary := core.Summarize(txns)
	report.WriteSummary(os.Stdout, summary, cfg.CurrencySymbol)

	chartLog := logger.WithComponent(applog.ComponentReport)
	if err := report.SavePie(cfg.ChartPath, summary); err != nil {
		if errors.Is(err, report.ErrNoChartData) {
			chartLog.Info("Skipping pie chart, nothing to draw")
		} else {
			chartLog.Warn("Failed to render pie chart", applog.FieldError, err, applog.FieldPath, cfg.ChartPath)
		}
	} else {
		fmt.Printf("Pie chart written to %s\n", cfg.ChartPath)
	}

	report.WriteSuggestions(os.Stdout, advice.ForSummary(summary))

	persist(context.Background(), logger.WithComponent(applog.ComponentStorage), cfg, path, txns)

	profile, err := prompter.CollectProfile()
	if err != nil {
		logger.Error("Interview failed", applog.FieldError, err)
		os.Exit(1)
	}
	report.WriteProfileAdvice(os.Stdout, advice.ForProfile(profile))
}

// loadWithRetry loads the transactions file, re-prompting for a path while
// the file cannot be found. The retry budget lives in the prompter, so a
// stubborn streak of bad paths ends the run instead of recursing forever.
func loadWithRetry(p *prompt.Prompter, path string, classify csvio.Classify) (string, []core.Transaction, error) {
	for {
		txns, err := csvio.Load(path, classify)
		if err == nil {
			return path, txns, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return path, nil, err
		}

		fmt.Printf("File not found: %s\n", path)
		path, err = p.AskExistingPath("Enter the path to your transactions CSV:")
		if err != nil {
			return path, nil, err
		}
	}
}

// persist stores the categorized import in SQLite and publishes one sync
// message per row. Failures here never abort the analysis: the CLI degrades
// to in-memory-only with a logged warning.
func persist(ctx context.Context, logger *applog.Logger, cfg *config.Config, sourceFile string, txns []core.Transaction) {
	if cfg.SQLiteDBPath == "" {
		logger.Info("Persistence disabled - no SQLite path configured")
		return
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Warn("Persistence unavailable, continuing without it", applog.FieldError, err, applog.FieldPath, cfg.SQLiteDBPath)
		return
	}
	defer repo.Close()

	var publisher *amqp.Client
	if cfg.AMQPURL != "" {
		publisher, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, continuing in SQLite-only mode", applog.FieldError, err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	importID, err := repo.CreateImport(ctx, sourceFile)
	if err != nil {
		logger.Warn("Failed to record import batch", applog.FieldError, err)
		return
	}

	saved := 0
	for _, t := range txns {
		id, err := repo.AppendTransaction(ctx, importID, t)
		if err != nil {
			logger.Warn("Failed to save transaction", "description", t.Description, applog.FieldError, err)
			continue
		}
		saved++

		if publisher != nil {
			if err := publisher.PublishTransactionSync(ctx, id, importID); err != nil {
				logger.Warn("Failed to publish sync message", "id", id, applog.FieldError, err)
			}
		}
	}

	logger.Info("Import persisted", applog.FieldImportID, importID, "saved", saved, "total", len(txns))
}
