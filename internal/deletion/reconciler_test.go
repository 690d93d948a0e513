package deletion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/entity"
	"github.com/aferrand/decisions-collector/internal/repository"
	"github.com/aferrand/decisions-collector/internal/storage"
)

type memStore struct {
	buckets map[string]map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{buckets: make(map[string]map[string][]byte)}
}

func (m *memStore) put(bucket, key string, data []byte) {
	if m.buckets[bucket] == nil {
		m.buckets[bucket] = make(map[string][]byte)
	}
	m.buckets[bucket][key] = data
}

func (m *memStore) has(bucket, key string) bool {
	_, ok := m.buckets[bucket][key]
	return ok
}

func (m *memStore) List(_ context.Context, bucket, prefix, startAfter string, max int) ([]string, error) {
	var keys []string
	for k := range m.buckets[bucket] {
		if strings.HasPrefix(k, prefix) && k > startAfter {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if max > 0 && len(keys) > max {
		keys = keys[:max]
	}
	return keys, nil
}

func (m *memStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	data, ok := m.buckets[bucket][key]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", bucket, key, storage.ErrObjectNotFound)
	}
	return data, nil
}

func (m *memStore) Put(_ context.Context, bucket, key string, data []byte, _ string) error {
	m.put(bucket, key, data)
	return nil
}

func (m *memStore) Delete(_ context.Context, bucket, key string) error {
	if _, ok := m.buckets[bucket][key]; !ok {
		return fmt.Errorf("%s/%s: %w", bucket, key, storage.ErrObjectNotFound)
	}
	delete(m.buckets[bucket], key)
	return nil
}

type memDecisions struct {
	byID      map[uuid.UUID]*entity.NormalizedDecision
	lookupErr error
	deleted   []uuid.UUID
}

func newMemDecisions() *memDecisions {
	return &memDecisions{byID: make(map[uuid.UUID]*entity.NormalizedDecision)}
}

func (m *memDecisions) add(d *entity.NormalizedDecision) *entity.NormalizedDecision {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	m.byID[d.ID] = d
	return d
}

func (m *memDecisions) GetBySourceID(_ context.Context, sourceID int64) (*entity.NormalizedDecision, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, d := range m.byID {
		if d.SourceID == sourceID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memDecisions) Save(_ context.Context, d *entity.NormalizedDecision) (*entity.NormalizedDecision, error) {
	return m.add(d), nil
}

func (m *memDecisions) Overwrite(_ context.Context, _ uuid.UUID, _ *entity.NormalizedDecision) error {
	return errors.New("not used")
}

func (m *memDecisions) Patch(_ context.Context, _ uuid.UUID, _ repository.DecisionPatch) error {
	return errors.New("not used")
}

func (m *memDecisions) DeleteByID(_ context.Context, id uuid.UUID) error {
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memDecisions) List(_ context.Context, _ string, _ constants.LabelStatus, _, _ *time.Time) ([]*entity.NormalizedDecision, error) {
	return nil, nil
}

const (
	rawBucket       = "raw"
	normBucket      = "normalized"
	pdfOKBucket     = "pdf-success"
	pdfKOBucket     = "pdf-failed"
	pendingBucket   = "deletion-pending"
	processedBucket = "deletion-processed"
)

func testBuckets() common.StorageConfig {
	return common.StorageConfig{
		RawBucket:               rawBucket,
		NormalizedBucket:        normBucket,
		PDFSuccessBucket:        pdfOKBucket,
		PDFFailedBucket:         pdfKOBucket,
		DeletionPendingBucket:   pendingBucket,
		DeletionProcessedBucket: processedBucket,
	}
}

func putMarker(t *testing.T, store *memStore, key string, marker entity.DeletionMarker) {
	t.Helper()
	data, err := json.Marshal(marker)
	require.NoError(t, err)
	store.put(pendingBucket, key, data)
}

func processedOutcome(t *testing.T, store *memStore, key string) string {
	t.Helper()
	data, ok := store.buckets[processedBucket][key]
	require.True(t, ok, "marker %s not archived", key)
	var rec entity.ProcessedMarker
	require.NoError(t, json.Unmarshal(data, &rec))
	return rec.Outcome
}

func newTestReconciler(store *memStore, decisions *memDecisions) *Reconciler {
	r := NewReconciler(store, testBuckets(), decisions, slog.Default())
	r.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestRunPurgesUnknownDecision(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()

	store.put(rawBucket, "abc123.json", []byte("{}"))
	store.put(rawBucket, "abc123.pdf", []byte("%PDF"))
	store.put(normBucket, "abc123.json", []byte("{}"))
	store.put(pdfOKBucket, "abc123.nlp.json", []byte("{}"))
	store.put(pdfKOBucket, "abc123.pdf", []byte("%PDF"))
	putMarker(t, store, "m1", entity.DeletionMarker{
		S3Key:        "abc123.json",
		SourceID:     42,
		DeletionDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	r := newTestReconciler(store, decisions)
	require.NoError(t, r.Run(context.Background()))

	assert.False(t, store.has(rawBucket, "abc123.json"))
	assert.False(t, store.has(rawBucket, "abc123.pdf"))
	assert.False(t, store.has(normBucket, "abc123.json"))
	assert.False(t, store.has(pdfOKBucket, "abc123.nlp.json"))
	assert.False(t, store.has(pdfKOBucket, "abc123.pdf"))
	assert.Empty(t, decisions.deleted, "nothing downstream to delete")

	assert.False(t, store.has(pendingBucket, "m1"), "marker consumed")
	assert.Equal(t, string(OutcomePurged), processedOutcome(t, store, "m1"))
}

func TestRunDeletesUnpublishedDecision(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	d := decisions.add(&entity.NormalizedDecision{
		SourceID:      42,
		LabelStatus:   constants.LabelStatusDone,
		PublishStatus: constants.PublishStatusToBePublished,
		DateCreation:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	store.put(normBucket, "abc123.json", []byte("{}"))
	putMarker(t, store, "m1", entity.DeletionMarker{
		S3Key:        "abc123.json",
		SourceID:     42,
		DeletionDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	r := newTestReconciler(store, decisions)
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, []uuid.UUID{d.ID}, decisions.deleted)
	assert.False(t, store.has(normBucket, "abc123.json"))
	assert.Equal(t, string(OutcomeDeleted), processedOutcome(t, store, "m1"))
}

func TestRunFlagsPublishedDecision(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	decisions.add(&entity.NormalizedDecision{
		SourceID:      42,
		LabelStatus:   constants.LabelStatusDone,
		PublishStatus: constants.PublishStatusSuccess,
		DateCreation:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	store.put(normBucket, "abc123.json", []byte("{}"))
	putMarker(t, store, "m1", entity.DeletionMarker{
		S3Key:        "abc123.json",
		SourceID:     42,
		DeletionDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	r := newTestReconciler(store, decisions)
	require.NoError(t, r.Run(context.Background()))

	assert.Empty(t, decisions.deleted, "published decisions are flagged, not deleted")
	assert.True(t, store.has(normBucket, "abc123.json"), "storage untouched until unpublication")
	assert.Equal(t, string(OutcomeFlaggedUnpublish), processedOutcome(t, store, "m1"))
}

func TestRunFlagsLoadedDecisionForManualRemoval(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	decisions.add(&entity.NormalizedDecision{
		SourceID:      42,
		LabelStatus:   constants.LabelStatusLoaded,
		PublishStatus: constants.PublishStatusPending,
		DateCreation:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	putMarker(t, store, "m1", entity.DeletionMarker{
		S3Key:        "abc123.json",
		SourceID:     42,
		DeletionDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	r := newTestReconciler(store, decisions)
	require.NoError(t, r.Run(context.Background()))

	assert.Empty(t, decisions.deleted)
	assert.Equal(t, string(OutcomeFlaggedManualRemove), processedOutcome(t, store, "m1"))
}

func TestRunSkipsStaleMarker(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	decisions.add(&entity.NormalizedDecision{
		SourceID:      42,
		LabelStatus:   constants.LabelStatusDone,
		PublishStatus: constants.PublishStatusToBePublished,
		DateCreation:  time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
	})
	store.put(normBucket, "abc123.json", []byte("{}"))
	// The decision was re-created after the deletion was requested.
	putMarker(t, store, "m1", entity.DeletionMarker{
		S3Key:        "abc123.json",
		SourceID:     42,
		DeletionDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	r := newTestReconciler(store, decisions)
	require.NoError(t, r.Run(context.Background()))

	assert.Empty(t, decisions.deleted)
	assert.True(t, store.has(normBucket, "abc123.json"))
	assert.Equal(t, string(OutcomeSkippedStale), processedOutcome(t, store, "m1"))
}

func TestRunLeavesMarkerPendingOnLookupFailure(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	d := decisions.add(&entity.NormalizedDecision{
		SourceID:      42,
		LabelStatus:   constants.LabelStatusDone,
		PublishStatus: constants.PublishStatusToBePublished,
		DateCreation:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	store.put(normBucket, "abc123.json", []byte("{}"))
	putMarker(t, store, "m1", entity.DeletionMarker{
		S3Key:        "abc123.json",
		SourceID:     42,
		DeletionDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	r := newTestReconciler(store, decisions)

	decisions.lookupErr = errors.New("connection refused")
	require.NoError(t, r.Run(context.Background()))

	assert.True(t, store.has(pendingBucket, "m1"), "marker must survive a failed lookup")
	assert.False(t, store.has(processedBucket, "m1"), "marker must not be archived")
	assert.True(t, store.has(normBucket, "abc123.json"), "storage untouched when downstream state is unknown")
	assert.Empty(t, decisions.deleted)

	// Next scheduled run, database back: the request applies in full.
	decisions.lookupErr = nil
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, []uuid.UUID{d.ID}, decisions.deleted)
	assert.False(t, store.has(pendingBucket, "m1"))
	assert.Equal(t, string(OutcomeDeleted), processedOutcome(t, store, "m1"))
}

func TestRunArchivesMalformedMarker(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	store.put(pendingBucket, "broken", []byte("not json"))

	r := newTestReconciler(store, decisions)
	require.NoError(t, r.Run(context.Background()))

	assert.False(t, store.has(pendingBucket, "broken"), "malformed marker must not wedge the queue")
	assert.Equal(t, string(OutcomeSkippedStale), processedOutcome(t, store, "broken"))
}
