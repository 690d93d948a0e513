package rules

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

type fakeZoner struct {
	res ZoningResult
	err error
}

func (f *fakeZoner) Classify(_ context.Context, _ int64, _ string) (ZoningResult, error) {
	return f.res, f.err
}

func boolPtr(b bool) *bool { return &b }

func testDecision() *entity.NormalizedDecision {
	return &entity.NormalizedDecision{
		SourceID:       42,
		JurisdictionID: "7501",
		Public:         true,
		DebatPublic:    true,
		LabelStatus:    constants.LabelStatusToBeTreated,
		DateDecision:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DateCreation:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}
}

func newTestClassifier(zoner Zoner) *Classifier {
	return NewClassifier(
		zoner,
		time.Second,
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		[]string{"7501"},
		slog.Default(),
	)
}

func TestClassifyPublicity(t *testing.T) {
	c := newTestClassifier(nil)

	d := testDecision()
	d.Public = false
	d.DebatPublic = false
	assert.Equal(t, constants.LabelStatusIgnoredDebatNonPublic, c.Classify(context.Background(), d))

	d = testDecision()
	d.Public = false
	assert.Equal(t, constants.LabelStatusIgnoredDecisionNonPublique, c.Classify(context.Background(), d))
}

func TestClassifyZoningOverrides(t *testing.T) {
	tests := []struct {
		name string
		res  ZoningResult
		want constants.LabelStatus
	}{
		{"zoning says decision not public", ZoningResult{Public: boolPtr(false)}, constants.LabelStatusIgnoredDecisionNonPublique},
		{"zoning says debat not public", ZoningResult{Public: boolPtr(true), DebatPublic: boolPtr(false)}, constants.LabelStatusIgnoredDebatNonPublic},
		{"zoning agrees", ZoningResult{Public: boolPtr(true), DebatPublic: boolPtr(true)}, constants.LabelStatusToBeTreated},
		{"zoning has no opinion", ZoningResult{}, constants.LabelStatusToBeTreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(&fakeZoner{res: tt.res})
			assert.Equal(t, tt.want, c.Classify(context.Background(), testDecision()))
		})
	}
}

func TestClassifyZoningFailureIsNotFatal(t *testing.T) {
	c := newTestClassifier(&fakeZoner{err: errors.New("connection refused")})
	assert.Equal(t, constants.LabelStatusToBeTreated, c.Classify(context.Background(), testDecision()))
}

func TestClassifyDateRules(t *testing.T) {
	c := newTestClassifier(nil)

	d := testDecision()
	d.DateDecision = d.DateCreation.AddDate(0, 0, 1)
	assert.Equal(t, constants.LabelStatusIgnoredDateDecisionIncoherente, c.Classify(context.Background(), d))

	d = testDecision()
	d.DateDecision = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, constants.LabelStatusIgnoredDateAvantMiseEnService, c.Classify(context.Background(), d))
}

func TestClassifyWhitelist(t *testing.T) {
	c := newTestClassifier(nil)

	d := testDecision()
	d.JurisdictionID = "0000"
	assert.Equal(t, constants.LabelStatusIgnoredJuridictionEnPhaseDeTest, c.Classify(context.Background(), d))
}

func TestClassifyPassThroughKeepsStage(t *testing.T) {
	c := newTestClassifier(nil)

	d := testDecision()
	d.LabelStatus = constants.LabelStatusExported
	assert.Equal(t, constants.LabelStatusExported, c.Classify(context.Background(), d))
}
