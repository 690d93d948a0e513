// Package deletion reconciles deletion requests against the downstream
// decision database and the storage buckets.
package deletion

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/entity"
	"github.com/aferrand/decisions-collector/internal/repository"
	"github.com/aferrand/decisions-collector/internal/storage"
)

// Outcome labels what the decision table chose for a marker.
type Outcome string

const (
	OutcomePurged              Outcome = "purged"
	OutcomeSkippedStale        Outcome = "skipped_stale"
	OutcomeFlaggedUnpublish    Outcome = "flagged_unpublish"
	OutcomeDeleted             Outcome = "deleted"
	OutcomeFlaggedManualRemove Outcome = "flagged_manual_removal"
)

// Reconciler is the deletion-request batch. One Run never overlaps another;
// the scheduler enforces single flight.
type Reconciler struct {
	Store     storage.Store
	Buckets   common.StorageConfig
	Decisions repository.DecisionRepository
	PageSize  int
	Logger    *slog.Logger

	now func() time.Time
}

func NewReconciler(store storage.Store, buckets common.StorageConfig, decisions repository.DecisionRepository, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		Store:     store,
		Buckets:   buckets,
		Decisions: decisions,
		PageSize:  100,
		Logger:    logger,
		now:       time.Now,
	}
}

// Run lists pending deletion markers and applies the decision table to each.
// Marker-level failures are contained; a failed listing ends the run.
func (r *Reconciler) Run(ctx context.Context) error {
	runID := uuid.New().String()
	ctx = common.WithRunID(ctx, runID)
	r.Logger.Info("deletion.run.start", "run_id", runID)

	var processed, failed int
	cursor := ""
	for {
		keys, err := r.Store.List(ctx, r.Buckets.DeletionPendingBucket, "", cursor, r.PageSize)
		if err != nil {
			r.Logger.Error("deletion.run.list_failed", "run_id", runID, "error", err)
			return common.WrapError(common.ErrInfrastructure, err.Error())
		}
		if len(keys) == 0 {
			break
		}
		for _, key := range keys {
			cursor = key
			processed++
			if err := r.processMarker(ctx, key); err != nil {
				failed++
			}
		}
	}

	r.Logger.Info("deletion.run.done", "run_id", runID, "processed", processed, "failed", failed)
	return nil
}

func (r *Reconciler) processMarker(ctx context.Context, markerKey string) error {
	correlationID := uuid.New().String()
	ctx = common.WithCorrelationID(ctx, correlationID)
	log := r.Logger.With(
		"run_id", common.RunIDFromContext(ctx),
		"correlation_id", correlationID,
		"marker", markerKey,
	)

	data, err := r.Store.Get(ctx, r.Buckets.DeletionPendingBucket, markerKey)
	if err != nil {
		log.Error("deletion.marker.fetch_failed", "error", err)
		return err
	}
	var marker entity.DeletionMarker
	if err := json.Unmarshal(data, &marker); err != nil {
		log.Error("deletion.marker.invalid", "error", err)
		// Malformed markers are archived too, or they would wedge the queue.
		r.archive(ctx, markerKey, entity.DeletionMarker{S3Key: markerKey}, OutcomeSkippedStale, log)
		return common.WrapError(common.ErrValidation, err.Error())
	}

	outcome, err := r.resolve(ctx, &marker, log)
	if err != nil {
		// Unknown downstream state: leave the marker pending so the next
		// scheduled run retries it.
		return err
	}
	r.archive(ctx, markerKey, marker, outcome, log)
	log.Info("deletion.marker.done", "source_id", marker.SourceID, "outcome", outcome)
	return nil
}

// resolve walks the decision table for one marker. Storage and downstream
// sub-operations are attempted independently with failures logged, but a
// failed database lookup aborts: the marker must stay pending.
func (r *Reconciler) resolve(ctx context.Context, marker *entity.DeletionMarker, log *slog.Logger) (Outcome, error) {
	existing, err := r.Decisions.GetBySourceID(ctx, marker.SourceID)
	if err != nil {
		log.Error("deletion.marker.lookup_failed", "source_id", marker.SourceID, "error", err)
		return "", common.WrapError(common.ErrInfrastructure, err.Error())
	}

	if existing == nil {
		r.purgeStorage(ctx, marker.S3Key, log)
		return OutcomePurged, nil
	}

	if marker.DeletionDate.Before(existing.DateCreation) {
		log.Info("deletion.marker.stale",
			"source_id", marker.SourceID,
			"deletion_date", marker.DeletionDate,
			"date_creation", existing.DateCreation,
		)
		return OutcomeSkippedStale, nil
	}

	published := existing.PublishStatus == constants.PublishStatusSuccess

	switch existing.LabelStatus {
	case constants.LabelStatusToBeTreated, constants.LabelStatusDone:
		if published {
			log.Warn("deletion.marker.unpublish_required", "source_id", marker.SourceID)
			return OutcomeFlaggedUnpublish, nil
		}
		r.purgeStorage(ctx, marker.S3Key, log)
		r.deleteDownstream(ctx, existing.ID, log)
		return OutcomeDeleted, nil

	case constants.LabelStatusLoaded:
		log.Warn("deletion.marker.manual_removal_required", "source_id", marker.SourceID)
		if published {
			log.Warn("deletion.marker.unpublish_required", "source_id", marker.SourceID)
		}
		return OutcomeFlaggedManualRemove, nil

	case constants.LabelStatusExported:
		log.Warn("deletion.marker.unpublish_required", "source_id", marker.SourceID)
		return OutcomeFlaggedUnpublish, nil

	default:
		r.purgeStorage(ctx, marker.S3Key, log)
		r.deleteDownstream(ctx, existing.ID, log)
		return OutcomeDeleted, nil
	}
}

// purgeStorage removes every object derived from the raw key across the four
// content buckets. Each delete is attempted regardless of earlier failures.
func (r *Reconciler) purgeStorage(ctx context.Context, rawKey string, log *slog.Logger) {
	pdfKey := constants.PDFKeyFor(rawKey)
	targets := []struct {
		bucket string
		key    string
	}{
		{r.Buckets.RawBucket, rawKey},
		{r.Buckets.RawBucket, pdfKey},
		{r.Buckets.NormalizedBucket, rawKey},
		{r.Buckets.PDFSuccessBucket, constants.DecisionID(rawKey) + ".nlp.json"},
		{r.Buckets.PDFFailedBucket, pdfKey},
	}
	for _, t := range targets {
		if err := r.Store.Delete(ctx, t.bucket, t.key); err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				continue
			}
			log.Error("deletion.purge.failed", "bucket", t.bucket, "key", t.key, "error", err)
		}
	}
}

func (r *Reconciler) deleteDownstream(ctx context.Context, id uuid.UUID, log *slog.Logger) {
	if err := r.Decisions.DeleteByID(ctx, id); err != nil {
		log.Error("deletion.downstream.failed", "id", id, "error", err)
	}
}

// archive writes the processed-marker record then deletes the original, so a
// marker is handled at most once even across retries.
func (r *Reconciler) archive(ctx context.Context, markerKey string, marker entity.DeletionMarker, outcome Outcome, log *slog.Logger) {
	record := entity.ProcessedMarker{
		DeletionMarker: marker,
		ProcessedAt:    r.now().UTC(),
		Outcome:        string(outcome),
	}
	payload, err := json.Marshal(record)
	if err != nil {
		log.Error("deletion.archive.encode_failed", "error", err)
		return
	}
	if err := r.Store.Put(ctx, r.Buckets.DeletionProcessedBucket, markerKey, payload, "application/json"); err != nil {
		log.Error("deletion.archive.put_failed", "error", err)
		return
	}
	if err := r.Store.Delete(ctx, r.Buckets.DeletionPendingBucket, markerKey); err != nil {
		log.Error("deletion.archive.delete_failed", "error", err)
	}
}
