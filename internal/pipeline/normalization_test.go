package pipeline

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
	"github.com/aferrand/decisions-collector/internal/nlp"
	"github.com/aferrand/decisions-collector/internal/repository"
	"github.com/aferrand/decisions-collector/internal/rules"
	"github.com/aferrand/decisions-collector/internal/storage"
)

// memStore is an in-memory storage.Store for tests.
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

// memDecisions is an in-memory repository.DecisionRepository for tests.
type memDecisions struct {
	byID map[uuid.UUID]*entity.NormalizedDecision

	saved       int
	overwritten int
	patched     int
}

func newMemDecisions() *memDecisions {
	return &memDecisions{byID: make(map[uuid.UUID]*entity.NormalizedDecision)}
}

func (m *memDecisions) GetBySourceID(_ context.Context, sourceID int64) (*entity.NormalizedDecision, error) {
	for _, d := range m.byID {
		if d.SourceID == sourceID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memDecisions) Save(_ context.Context, d *entity.NormalizedDecision) (*entity.NormalizedDecision, error) {
	cp := *d
	cp.ID = uuid.New()
	m.byID[cp.ID] = &cp
	m.saved++
	out := cp
	return &out, nil
}

func (m *memDecisions) Overwrite(_ context.Context, id uuid.UUID, d *entity.NormalizedDecision) error {
	existing, ok := m.byID[id]
	if !ok {
		return errors.New("no such decision")
	}
	cp := *d
	cp.ID = id
	cp.DateCreation = existing.DateCreation
	m.byID[id] = &cp
	m.overwritten++
	return nil
}

func (m *memDecisions) Patch(_ context.Context, id uuid.UUID, p repository.DecisionPatch) error {
	d, ok := m.byID[id]
	if !ok {
		return errors.New("no such decision")
	}
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&d.ChamberID, p.ChamberID)
	setStr(&d.ChamberName, p.ChamberName)
	setStr(&d.JurisdictionCode, p.JurisdictionCode)
	setStr(&d.JurisdictionName, p.JurisdictionName)
	setStr(&d.GroupID, p.GroupID)
	setStr(&d.RegisterNumber, p.RegisterNumber)
	setStr(&d.MatterCode, p.MatterCode)
	setStr(&d.MatterLabel, p.MatterLabel)
	setStr(&d.ProcedureCode, p.ProcedureCode)
	setStr(&d.Solution, p.Solution)
	if p.Selection != nil {
		d.Selection = *p.Selection
	}
	if p.DateDecision != nil {
		d.DateDecision = *p.DateDecision
	}
	if p.Parties != nil {
		d.Parties = p.Parties
	}
	if p.Composition != nil {
		d.Composition = p.Composition
	}
	if p.LabelStatus != nil {
		d.LabelStatus = *p.LabelStatus
	}
	if p.PublishStatus != nil {
		d.PublishStatus = *p.PublishStatus
	}
	m.patched++
	return nil
}

func (m *memDecisions) DeleteByID(_ context.Context, id uuid.UUID) error {
	delete(m.byID, id)
	return nil
}

func (m *memDecisions) List(_ context.Context, sourceName string, status constants.LabelStatus, _, _ *time.Time) ([]*entity.NormalizedDecision, error) {
	var out []*entity.NormalizedDecision
	for _, d := range m.byID {
		if d.SourceName == sourceName && (status == "" || d.LabelStatus == status) {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memFailures is an in-memory repository.ExtractFailureRepository for tests.
type memFailures struct {
	attempts map[string]int
	resets   int
}

func newMemFailures() *memFailures {
	return &memFailures{attempts: make(map[string]int)}
}

func (m *memFailures) Increment(_ context.Context, filename, _ string) (int, error) {
	m.attempts[filename]++
	return m.attempts[filename], nil
}

func (m *memFailures) Reset(_ context.Context, filename string) error {
	delete(m.attempts, filename)
	m.resets++
	return nil
}

// fakeExtractor scripts the pdf-to-text responses.
type fakeExtractor struct {
	res   *nlp.ExtractionResult
	err   error
	calls int
}

func (f *fakeExtractor) ExtractText(_ context.Context, _ string, _ []byte) (*nlp.ExtractionResult, error) {
	f.calls++
	return f.res, f.err
}

const (
	testRawBucket        = "raw"
	testNormalizedBucket = "normalized"
	testPDFSuccessBucket = "pdf-success"
	testPDFFailedBucket  = "pdf-failed"
)

func testBuckets() common.StorageConfig {
	return common.StorageConfig{
		RawBucket:        testRawBucket,
		NormalizedBucket: testNormalizedBucket,
		PDFSuccessBucket: testPDFSuccessBucket,
		PDFFailedBucket:  testPDFFailedBucket,
	}
}

func rawFixture() *entity.RawDecision {
	return &entity.RawDecision{
		OriginalText: "Le tribunal de commerce,\nstatuant publiquement,\ndéboute.",
		Metadata: entity.Metadata{
			JurisdictionID: "7501",
			GroupID:        "G1",
			CaseNumber:     "2025/00123",
			DecisionDate:   "20250310",
			ChamberName:    "Première chambre",
			DecisionPublic: true,
			DebatPublic:    true,
		},
	}
}

func putRaw(t *testing.T, store *memStore, key string, raw *entity.RawDecision) {
	t.Helper()
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	store.put(testRawBucket, key, data)
}

func newTestJob(store *memStore, decisions *memDecisions, failures *memFailures, extractor TextExtractor, nlpEnabled bool) *Job {
	classifier := rules.NewClassifier(
		nil,
		time.Second,
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		[]string{"7501"},
		slog.Default(),
	)
	j := NewJob(
		store,
		testBuckets(),
		decisions,
		failures,
		extractor,
		classifier,
		common.NormalizationConfig{
			PageSize:          10,
			CooldownOnError:   time.Millisecond,
			CooldownRateLimit: 2 * time.Millisecond,
		},
		common.NLPConfig{Enabled: nlpEnabled, MaxAttempts: 3},
		slog.Default(),
	)
	j.sleep = func(time.Duration) {}
	j.now = func() time.Time { return time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC) }
	return j
}

func TestRunInsertsNewDecision(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	putRaw(t, store, "abc123.json", rawFixture())

	job := newTestJob(store, decisions, newMemFailures(), &fakeExtractor{}, false)
	converted, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, converted, 1)

	d := converted[0]
	assert.Equal(t, entity.SourceID("7501", "2025/00123", "20250310"), d.SourceID)
	assert.Equal(t, constants.LabelStatusToBeTreated, d.LabelStatus)
	assert.Equal(t, constants.PublishStatusToBePublished, d.PublishStatus)
	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.NotEmpty(t, d.Occultation.CategoriesToOmit)

	assert.Equal(t, 1, decisions.saved)
	assert.False(t, store.has(testRawBucket, "abc123.json"), "source object must be consumed")
	assert.True(t, store.has(testNormalizedBucket, "abc123.json"), "canonical record must be mirrored")

	stored, err := decisions.GetBySourceID(context.Background(), d.SourceID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, d.OriginalText, stored.OriginalText)
}

func TestRunPatchesMinorChange(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()

	// Seed the stored version from the same submission, then change a minor
	// field in the incoming one.
	job := newTestJob(store, decisions, newMemFailures(), &fakeExtractor{}, false)
	seed := rawFixture()
	putRaw(t, store, "abc123.json", seed)
	_, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, decisions.saved)

	resubmitted := rawFixture()
	resubmitted.Metadata.ChamberName = "Deuxième chambre"
	putRaw(t, store, "abc123.json", resubmitted)

	converted, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, converted, 1)

	assert.Equal(t, 1, decisions.saved, "no second insert")
	assert.Equal(t, 0, decisions.overwritten, "minor change must not overwrite")
	assert.Equal(t, 1, decisions.patched)

	stored, err := decisions.GetBySourceID(context.Background(), converted[0].SourceID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Deuxième chambre", stored.ChamberName)
	assert.Contains(t, stored.OriginalText, "tribunal de commerce")
}

func TestRunOverwritesMajorChange(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()

	job := newTestJob(store, decisions, newMemFailures(), &fakeExtractor{}, false)
	putRaw(t, store, "abc123.json", rawFixture())
	first, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	resubmitted := rawFixture()
	resubmitted.OriginalText = "Le tribunal de commerce,\nstatuant publiquement,\ntexte rectifié."
	putRaw(t, store, "abc123.json", resubmitted)

	second, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, 1, decisions.overwritten)
	assert.Equal(t, first[0].ID, second[0].ID, "identity survives the overwrite")
	assert.Equal(t, first[0].DateCreation, second[0].DateCreation, "creation date survives the overwrite")
	assert.Contains(t, second[0].OriginalText, "texte rectifié")
}

func TestRunSkipsUnchangedResubmission(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()

	job := newTestJob(store, decisions, newMemFailures(), &fakeExtractor{}, false)
	putRaw(t, store, "abc123.json", rawFixture())
	_, err := job.Run(context.Background())
	require.NoError(t, err)

	putRaw(t, store, "abc123.json", rawFixture())
	converted, err := job.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, converted, "identical resubmission produces no new version")
	assert.Equal(t, 1, decisions.saved)
	assert.Equal(t, 0, decisions.overwritten)
	assert.Equal(t, 0, decisions.patched)
	assert.False(t, store.has(testRawBucket, "abc123.json"), "duplicate source still consumed")
}

func TestRunLeavesInvalidItemInPlace(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	store.put(testRawBucket, "broken.json", []byte(`{"metadonnees":{}}`))

	var slept []time.Duration
	job := newTestJob(store, decisions, newMemFailures(), &fakeExtractor{}, false)
	job.sleep = func(d time.Duration) { slept = append(slept, d) }

	converted, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, converted)
	assert.Equal(t, 0, decisions.saved)
	assert.True(t, store.has(testRawBucket, "broken.json"), "failed item stays for the next pass")
	assert.Equal(t, []time.Duration{time.Millisecond}, slept, "standard cooldown applies")
}

func TestRunRejectsSingleLineEmbeddedText(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	raw := rawFixture()
	raw.OriginalText = "tout sur une seule ligne"
	putRaw(t, store, "oneline.json", raw)

	job := newTestJob(store, decisions, newMemFailures(), &fakeExtractor{}, false)
	converted, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, converted)
	assert.Equal(t, 0, decisions.saved)
}

func TestRunExtractsFromPDF(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	raw := rawFixture()
	raw.OriginalText = ""
	putRaw(t, store, "abc123.json", raw)
	store.put(testRawBucket, "abc123.pdf", []byte("%PDF-1.7 fake"))

	extractor := &fakeExtractor{res: &nlp.ExtractionResult{
		MarkdownText: "# Jugement\n\nLe tribunal **déboute**.\n\nPar ces motifs.",
	}}
	job := newTestJob(store, decisions, newMemFailures(), extractor, true)

	converted, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, converted, 1)

	assert.Equal(t, 1, extractor.calls)
	assert.NotContains(t, converted[0].OriginalText, "#")
	assert.NotContains(t, converted[0].OriginalText, "**")
	assert.Contains(t, converted[0].OriginalText, "Le tribunal déboute.")
	assert.True(t, store.has(testPDFSuccessBucket, "abc123.nlp.json"), "service response archived")
	assert.False(t, store.has(testRawBucket, "abc123.json"))
}

func TestRunRateLimitedPDFStaysForNextPass(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	raw := rawFixture()
	raw.OriginalText = ""
	putRaw(t, store, "abc123.json", raw)
	store.put(testRawBucket, "abc123.pdf", []byte("%PDF-1.7 fake"))

	failures := newMemFailures()
	extractor := &fakeExtractor{err: common.WrapError(common.ErrRateLimit, "pdf-to-text throttled")}

	var slept []time.Duration
	job := newTestJob(store, decisions, failures, extractor, true)
	job.sleep = func(d time.Duration) { slept = append(slept, d) }

	converted, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, converted)
	assert.True(t, store.has(testRawBucket, "abc123.pdf"), "throttled PDF is not quarantined")
	assert.False(t, store.has(testPDFFailedBucket, "abc123.pdf"))
	assert.Equal(t, 1, failures.attempts["abc123.pdf"])
	assert.Equal(t, []time.Duration{2 * time.Millisecond}, slept, "rate-limit cooldown applies")
}

func TestRunQuarantinesFailingPDF(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	raw := rawFixture()
	raw.OriginalText = ""
	putRaw(t, store, "abc123.json", raw)
	store.put(testRawBucket, "abc123.pdf", []byte("%PDF-1.7 fake"))

	failures := newMemFailures()
	extractor := &fakeExtractor{err: common.WrapError(common.ErrInfrastructure, "pdf-to-text status 500")}
	job := newTestJob(store, decisions, failures, extractor, true)

	converted, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, converted)

	assert.True(t, store.has(testPDFFailedBucket, "abc123.pdf"), "PDF moved to the failed bucket")
	assert.False(t, store.has(testRawBucket, "abc123.pdf"), "PDF removed from the raw store")
	assert.True(t, store.has(testRawBucket, "abc123.json"), "metadata stays until the PDF is repaired")
	assert.Equal(t, 1, failures.resets, "counter cleared after quarantine")
}

func TestRunQuarantinesAfterRepeatedRateLimits(t *testing.T) {
	store := newMemStore()
	decisions := newMemDecisions()
	raw := rawFixture()
	raw.OriginalText = ""
	putRaw(t, store, "abc123.json", raw)
	store.put(testRawBucket, "abc123.pdf", []byte("%PDF-1.7 fake"))

	failures := newMemFailures()
	failures.attempts["abc123.pdf"] = 2 // two earlier passes already failed

	extractor := &fakeExtractor{err: common.WrapError(common.ErrRateLimit, "pdf-to-text throttled")}
	job := newTestJob(store, decisions, failures, extractor, true)

	_, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, store.has(testPDFFailedBucket, "abc123.pdf"), "attempt ceiling reached")
	assert.Equal(t, 1, failures.resets)
}
