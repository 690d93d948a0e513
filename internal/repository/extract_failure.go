package repository

import (
	"context"
	"log/slog"

	"github.com/aferrand/decisions-collector/gen/ent"
	"github.com/aferrand/decisions-collector/gen/ent/extractfailure"
	"github.com/aferrand/decisions-collector/internal/common"
)

// ExtractFailureRepository is the retry-counter side store, keyed by PDF filename.
type ExtractFailureRepository interface {
	// Increment bumps the counter atomically and returns the new value.
	Increment(ctx context.Context, filename, lastError string) (int, error)
	// Reset deletes the counter; missing rows are not an error.
	Reset(ctx context.Context, filename string) error
}

type extractFailureRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractFailureRepository(client *ent.Client, logger *slog.Logger) ExtractFailureRepository {
	return &extractFailureRepository{
		client: client,
		logger: logger,
	}
}

func (r *extractFailureRepository) Increment(ctx context.Context, filename, lastError string) (int, error) {
	err := r.client.ExtractFailure.Create().
		SetFilename(filename).
		SetAttempts(1).
		SetLastError(lastError).
		OnConflictColumns(extractfailure.FieldFilename).
		Update(func(u *ent.ExtractFailureUpsert) {
			u.AddAttempts(1)
			u.SetLastError(lastError)
		}).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to increment extract failure counter", "filename", filename, "error", err)
		return 0, common.WrapError(common.ErrInfrastructure, err.Error())
	}

	row, err := r.client.ExtractFailure.Query().
		Where(extractfailure.Filename(filename)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to read extract failure counter", "filename", filename, "error", err)
		return 0, common.WrapError(common.ErrInfrastructure, err.Error())
	}
	return row.Attempts, nil
}

func (r *extractFailureRepository) Reset(ctx context.Context, filename string) error {
	_, err := r.client.ExtractFailure.Delete().
		Where(extractfailure.Filename(filename)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to reset extract failure counter", "filename", filename, "error", err)
		return common.WrapError(common.ErrInfrastructure, err.Error())
	}
	return nil
}
