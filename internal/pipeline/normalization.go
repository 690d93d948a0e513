// Package pipeline drives the normalization batch: it walks pending raw
// decisions, resolves their text, cleans and maps them, and reconciles the
// result against the downstream decision database.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/entity"
	"github.com/aferrand/decisions-collector/internal/nlp"
	"github.com/aferrand/decisions-collector/internal/repository"
	"github.com/aferrand/decisions-collector/internal/rules"
	"github.com/aferrand/decisions-collector/internal/storage"
	"github.com/aferrand/decisions-collector/internal/textnorm"
	"github.com/aferrand/decisions-collector/internal/validation"
)

// TextExtractor is the pdf-to-text service boundary.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, pdf []byte) (*nlp.ExtractionResult, error)
}

// Job is the normalization orchestrator. One Run never overlaps another;
// the scheduler enforces single flight.
type Job struct {
	Store      storage.Store
	Buckets    common.StorageConfig
	Decisions  repository.DecisionRepository
	Failures   repository.ExtractFailureRepository
	Extractor  TextExtractor
	Classifier *rules.Classifier
	Cfg        common.NormalizationConfig
	NLP        common.NLPConfig
	Logger     *slog.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
	now   func() time.Time
}

func NewJob(
	store storage.Store,
	buckets common.StorageConfig,
	decisions repository.DecisionRepository,
	failures repository.ExtractFailureRepository,
	extractor TextExtractor,
	classifier *rules.Classifier,
	cfg common.NormalizationConfig,
	nlpCfg common.NLPConfig,
	logger *slog.Logger,
) *Job {
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{
		Store:      store,
		Buckets:    buckets,
		Decisions:  decisions,
		Failures:   failures,
		Extractor:  extractor,
		Classifier: classifier,
		Cfg:        cfg,
		NLP:        nlpCfg,
		Logger:     logger,
		sleep:      time.Sleep,
		now:        time.Now,
	}
}

// Run lists pending raw decisions page by page and processes each item
// sequentially. A single item's failure never aborts the batch; a failed
// listing ends the run. Returns the decisions converted in this run.
func (j *Job) Run(ctx context.Context) ([]*entity.NormalizedDecision, error) {
	runID := uuid.New().String()
	ctx = common.WithRunID(ctx, runID)
	start := j.now()

	j.Logger.Info("normalization.run.start", "run_id", runID)

	var converted []*entity.NormalizedDecision
	var processed, failed int
	cursor := ""
	for {
		keys, err := j.Store.List(ctx, j.Buckets.RawBucket, "", cursor, j.Cfg.PageSize)
		if err != nil {
			j.Logger.Error("normalization.run.list_failed", "run_id", runID, "error", err)
			return converted, common.WrapError(common.ErrInfrastructure, err.Error())
		}
		if len(keys) == 0 {
			break
		}

		for _, key := range keys {
			cursor = key
			if !strings.HasSuffix(key, constants.RawKeySuffix) {
				continue
			}

			d, err := j.processItem(ctx, key)
			processed++
			if err != nil {
				failed++
				j.coolDown(err)
				continue
			}
			if d != nil {
				converted = append(converted, d)
			}
		}
	}

	j.Logger.Info("normalization.run.done",
		"run_id", runID,
		"processed", processed,
		"converted", len(converted),
		"failed", failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return converted, nil
}

// coolDown applies the deliberate backpressure delay between failed items.
func (j *Job) coolDown(err error) {
	if common.IsRateLimit(err) {
		j.sleep(j.Cfg.CooldownRateLimit)
		return
	}
	j.sleep(j.Cfg.CooldownOnError)
}

// processItem runs one decision through the per-item state machine. A nil,
// nil return means the item completed without producing a new version
// (no-diff skip).
func (j *Job) processItem(ctx context.Context, key string) (*entity.NormalizedDecision, error) {
	correlationID := uuid.New().String()
	ctx = common.WithCorrelationID(ctx, correlationID)
	log := j.Logger.With(
		"run_id", common.RunIDFromContext(ctx),
		"correlation_id", correlationID,
		"key", key,
	)

	// FETCHED
	data, err := j.Store.Get(ctx, j.Buckets.RawBucket, key)
	if err != nil {
		log.Error("normalization.item.fetch_failed", "error", err)
		return nil, common.WrapError(common.ErrInfrastructure, err.Error())
	}
	raw, err := validation.ParseRawDecision(data)
	if err != nil {
		log.Error("normalization.item.invalid", "error", err)
		return nil, err
	}

	// TEXT_READY
	text, err := j.resolveText(ctx, key, raw, log)
	if err != nil {
		log.Error("normalization.item.text_failed", "error", err)
		return nil, err
	}

	// CLEANED
	cleaned := textnorm.Normalize(text)

	// MAPPED
	mapped, err := MapDecision(raw, cleaned, j.now())
	if err != nil {
		log.Error("normalization.item.map_failed", "error", err)
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	mapped.LabelStatus = j.Classifier.Classify(ctx, mapped)
	mapped.Occultation = rules.ComputeOccultation(raw.Metadata.RedactionForm, mapped.JurisdictionID, j.Cfg.ErroneousJurisdictions)

	// RECONCILED
	stored, skipped, err := j.reconcile(ctx, mapped, log)
	if err != nil {
		return nil, err
	}

	// PERSISTED
	if !skipped {
		if err := j.persistNormalized(ctx, key, stored); err != nil {
			log.Error("normalization.item.persist_failed", "error", err)
			return nil, common.WrapError(common.ErrInfrastructure, err.Error())
		}
	}

	// SOURCE_DELETED
	if err := j.Store.Delete(ctx, j.Buckets.RawBucket, key); err != nil {
		log.Error("normalization.item.source_delete_failed", "error", err)
		return nil, common.WrapError(common.ErrInfrastructure, err.Error())
	}

	if skipped {
		log.Info("normalization.item.unchanged")
		return nil, nil
	}
	log.Info("normalization.item.done",
		"source_id", stored.SourceID,
		"label_status", stored.LabelStatus,
	)
	return stored, nil
}

// resolveText picks the decision text source: the external pdf-to-text
// service when enabled, else the text embedded in the raw decision.
func (j *Job) resolveText(ctx context.Context, key string, raw *entity.RawDecision, log *slog.Logger) (string, error) {
	if !j.NLP.Enabled {
		text := raw.OriginalText
		if strings.TrimSpace(text) == "" {
			return "", common.WrapError(common.ErrValidation, "embedded decision text is empty")
		}
		if !strings.Contains(text, "\n") {
			return "", common.WrapError(common.ErrValidation, "embedded decision text has no line breaks")
		}
		return text, nil
	}
	return j.extractFromPDF(ctx, key, log)
}

// extractFromPDF calls the NLP service with bounded retries. A PDF that
// keeps failing (or fails with a non-backoff error) is quarantined to the
// failed bucket and its counter reset; transient rate limits leave it in
// place for the next pass.
func (j *Job) extractFromPDF(ctx context.Context, key string, log *slog.Logger) (string, error) {
	pdfKey := constants.PDFKeyFor(key)
	pdf, err := j.Store.Get(ctx, j.Buckets.RawBucket, pdfKey)
	if err != nil {
		return "", common.WrapError(common.ErrInfrastructure, err.Error())
	}

	res, err := j.Extractor.ExtractText(ctx, pdfKey, pdf)
	if err != nil {
		attempts, cerr := j.Failures.Increment(ctx, pdfKey, err.Error())
		if cerr != nil {
			log.Error("normalization.pdf.counter_failed", "pdf", pdfKey, "error", cerr)
			return "", err
		}
		if attempts >= j.NLP.MaxAttempts || !common.IsRateLimit(err) {
			if qerr := j.quarantine(ctx, pdfKey); qerr != nil {
				log.Error("normalization.pdf.quarantine_failed", "pdf", pdfKey, "error", qerr)
				return "", qerr
			}
			if rerr := j.Failures.Reset(ctx, pdfKey); rerr != nil {
				log.Error("normalization.pdf.counter_reset_failed", "pdf", pdfKey, "error", rerr)
			}
			log.Warn("normalization.pdf.quarantined", "pdf", pdfKey, "attempts", attempts)
			return "", common.WrapError(common.ErrQuarantined, err.Error())
		}
		log.Warn("normalization.pdf.retry_later", "pdf", pdfKey, "attempts", attempts)
		return "", err
	}

	// Archive the service response, then clear the failure counter.
	if aerr := j.archiveExtraction(ctx, key, res); aerr != nil {
		log.Warn("normalization.pdf.archive_failed", "pdf", pdfKey, "error", aerr)
	}
	if rerr := j.Failures.Reset(ctx, pdfKey); rerr != nil {
		log.Warn("normalization.pdf.counter_reset_failed", "pdf", pdfKey, "error", rerr)
	}

	text := nlp.MarkdownToPlainText(res.MarkdownText)
	if strings.TrimSpace(text) == "" {
		return "", common.WrapError(common.ErrValidation, "pdf-to-text produced empty text")
	}
	return text, nil
}

func (j *Job) quarantine(ctx context.Context, pdfKey string) error {
	return storage.Move(ctx, j.Store, j.Buckets.RawBucket, pdfKey, j.Buckets.PDFFailedBucket, pdfKey, "application/pdf")
}

func (j *Job) archiveExtraction(ctx context.Context, key string, res *nlp.ExtractionResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	archiveKey := constants.DecisionID(key) + ".nlp.json"
	return j.Store.Put(ctx, j.Buckets.PDFSuccessBucket, archiveKey, payload, "application/json")
}

// reconcile decides insert / overwrite / patch / skip against the stored
// version. Returns the decision as persisted downstream and whether
// persistence was skipped because nothing changed.
func (j *Job) reconcile(ctx context.Context, mapped *entity.NormalizedDecision, log *slog.Logger) (*entity.NormalizedDecision, bool, error) {
	existing, err := j.Decisions.GetBySourceID(ctx, mapped.SourceID)
	if err != nil {
		log.Error("normalization.item.lookup_failed", "source_id", mapped.SourceID, "error", err)
		return nil, false, err
	}

	if existing == nil {
		saved, err := j.Decisions.Save(ctx, mapped)
		if err != nil {
			log.Error("normalization.item.insert_failed", "source_id", mapped.SourceID, "error", err)
			return nil, false, err
		}
		log.Info("normalization.item.inserted", "source_id", mapped.SourceID)
		return saved, false, nil
	}

	diff := rules.ComputeDiff(existing, mapped)
	switch {
	case diff.Empty():
		log.Warn("normalization.item.no_diff", "source_id", mapped.SourceID)
		return existing, true, nil

	case len(diff.Major) > 0:
		if err := j.Decisions.Overwrite(ctx, existing.ID, mapped); err != nil {
			log.Error("normalization.item.overwrite_failed", "source_id", mapped.SourceID, "error", err)
			return nil, false, err
		}
		log.Info("normalization.item.overwritten", "source_id", mapped.SourceID, "major", diff.Major, "minor", diff.Minor)
		mapped.ID = existing.ID
		mapped.DateCreation = existing.DateCreation
		return mapped, false, nil

	default:
		transition := ComputeStatusTransition(existing, mapped.LabelStatus)
		if transition.Blocked {
			log.Warn("normalization.item.publication_blocked",
				"source_id", mapped.SourceID,
				"label_status", mapped.LabelStatus,
			)
		}
		patch := minorPatch(mapped, transition)
		if err := j.Decisions.Patch(ctx, existing.ID, patch); err != nil {
			log.Error("normalization.item.patch_failed", "source_id", mapped.SourceID, "error", err)
			return nil, false, err
		}
		log.Info("normalization.item.patched", "source_id", mapped.SourceID, "minor", diff.Minor)
		patched, err := j.Decisions.GetBySourceID(ctx, mapped.SourceID)
		if err != nil {
			return nil, false, err
		}
		if patched == nil {
			return nil, false, common.WrapError(common.ErrNotFound, fmt.Sprintf("decision %d vanished after patch", mapped.SourceID))
		}
		return patched, false, nil
	}
}

// minorPatch restricts the write to the minor field set plus the resolved
// status transition; major fields (text, occultation, publicness) stay put.
func minorPatch(mapped *entity.NormalizedDecision, transition StatusTransition) repository.DecisionPatch {
	return repository.DecisionPatch{
		ChamberID:        &mapped.ChamberID,
		ChamberName:      &mapped.ChamberName,
		JurisdictionCode: &mapped.JurisdictionCode,
		JurisdictionName: &mapped.JurisdictionName,
		GroupID:          &mapped.GroupID,
		RegisterNumber:   &mapped.RegisterNumber,
		MatterCode:       &mapped.MatterCode,
		MatterLabel:      &mapped.MatterLabel,
		ProcedureCode:    &mapped.ProcedureCode,
		Solution:         &mapped.Solution,
		Selection:        &mapped.Selection,
		DateDecision:     &mapped.DateDecision,
		Parties:          mapped.Parties,
		Composition:      mapped.Composition,
		LabelStatus:      transition.LabelStatus,
		PublishStatus:    transition.PublishStatus,
	}
}

// persistNormalized mirrors the canonical record into the normalized bucket
// under the raw key.
func (j *Job) persistNormalized(ctx context.Context, key string, d *entity.NormalizedDecision) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return j.Store.Put(ctx, j.Buckets.NormalizedBucket, key, payload, "application/json")
}
