package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/deletion"
	"github.com/aferrand/decisions-collector/internal/nlp"
	"github.com/aferrand/decisions-collector/internal/pipeline"
	repo "github.com/aferrand/decisions-collector/internal/repository"
	"github.com/aferrand/decisions-collector/internal/rules"
	"github.com/aferrand/decisions-collector/internal/scheduler"
	"github.com/aferrand/decisions-collector/internal/storage"
	"github.com/aferrand/decisions-collector/internal/zoning"
)

func main() {
	// Local .env is optional; real deployments inject the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("loading .env", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbResult, err := repo.InitDatabase(ctx, cfg, false, logger)
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
	} else {
		logger.Warn("zoning URL not configured, zoning checks disabled")
	}
	classifier := rules.NewClassifier(
		zoner,
		cfg.Zoning.Timeout,
		cfg.Normalization.CommissioningDate,
		cfg.Normalization.JurisdictionWhitelist,
		logger,
	)

	extractor := nlp.NewClient(cfg.NLP.URL, cfg.NLP.Timeout, logger)

	normJob := pipeline.NewJob(
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
	reconciler := deletion.NewReconciler(store, cfg.Storage, decisions, logger)

	sched := scheduler.New(logger)
	if err := sched.Add(ctx, "normalization", cfg.Normalization.Interval, func(ctx context.Context) error {
		_, err := normJob.Run(ctx)
		return err
	}); err != nil {
		logger.Error("failed to schedule normalization", "error", err)
		os.Exit(1)
	}
	if err := sched.Add(ctx, "deletion", cfg.Deletion.Interval, reconciler.Run); err != nil {
		logger.Error("failed to schedule deletion", "error", err)
		os.Exit(1)
	}

	sched.Start()
	logger.Info("collectord started",
		"normalization_interval", cfg.Normalization.Interval.String(),
		"deletion_interval", cfg.Deletion.Interval.String(),
	)

	<-ctx.Done()
	logger.Info("shutting down...")
	sched.Stop()
	logger.Info("stopped")
}
