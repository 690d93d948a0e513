package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/export"
	"github.com/aferrand/decisions-collector/internal/nlp"
	"github.com/aferrand/decisions-collector/internal/pipeline"
	repo "github.com/aferrand/decisions-collector/internal/repository"
	"github.com/aferrand/decisions-collector/internal/rules"
	"github.com/aferrand/decisions-collector/internal/storage"
	"github.com/aferrand/decisions-collector/internal/zoning"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		out     = flag.String("out", "", "write an XLSX run report to this path (optional)")
		fromStr = flag.String("from", "", "report from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "report to date YYYY-MM-DD")
	)
	flag.Parse()

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("loading .env", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if !*inmem {
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
	}

	dbResult, err := repo.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	store, err := storage.NewGCSStore(ctx, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	decisions := repo.NewDecisionRepository(dbResult.Client, logger)
	failures := repo.NewExtractFailureRepository(dbResult.Client, logger)

	var zoner rules.Zoner
	if cfg.Zoning.URL != "" {
		zoner = zoning.NewClient(cfg.Zoning.URL, cfg.Zoning.Timeout, logger)
	}
	classifier := rules.NewClassifier(
		zoner,
		cfg.Zoning.Timeout,
		cfg.Normalization.CommissioningDate,
		cfg.Normalization.JurisdictionWhitelist,
		logger,
	)
	extractor := nlp.NewClient(cfg.NLP.URL, cfg.NLP.Timeout, logger)

	job := pipeline.NewJob(
		store,
		cfg.Storage,
		decisions,
		failures,
		extractor,
		classifier,
		cfg.Normalization,
		cfg.NLP,
		logger,
	)

	converted, err := job.Run(ctx)
	if err != nil {
		logger.Error("normalization run failed", "error", err, "converted", len(converted))
		os.Exit(1)
	}
	logger.Info("normalization run complete", "converted", len(converted))

	if *out != "" {
		svc := export.NewService(decisions, logger)
		data, err := svc.ExportDecisionsXLSX(ctx, constants.LabelStatus(""), from, to)
		if err != nil {
			logger.Error("failed to build run report", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			logger.Error("failed to write run report", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("run report written", "path", *out)
	}
}
