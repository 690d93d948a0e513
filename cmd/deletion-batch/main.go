package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/deletion"
	repo "github.com/aferrand/decisions-collector/internal/repository"
	"github.com/aferrand/decisions-collector/internal/storage"
)

func main() {
	inmem := flag.Bool("inmem", false, "use in-memory SQLite database")
	flag.Parse()

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
	reconciler := deletion.NewReconciler(store, cfg.Storage, decisions, logger)

	if err := reconciler.Run(ctx); err != nil {
		logger.Error("deletion run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("deletion run complete")
}
