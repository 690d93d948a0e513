package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
	"github.com/aferrand/decisions-collector/internal/repository"
)

type stubDecisions struct {
	recs []*entity.NormalizedDecision
	err  error
}

func (s *stubDecisions) GetBySourceID(context.Context, int64) (*entity.NormalizedDecision, error) {
	return nil, nil
}

func (s *stubDecisions) Save(_ context.Context, d *entity.NormalizedDecision) (*entity.NormalizedDecision, error) {
	return d, nil
}

func (s *stubDecisions) Overwrite(context.Context, uuid.UUID, *entity.NormalizedDecision) error {
	return nil
}

func (s *stubDecisions) Patch(context.Context, uuid.UUID, repository.DecisionPatch) error {
	return nil
}

func (s *stubDecisions) DeleteByID(context.Context, uuid.UUID) error {
	return nil
}

func (s *stubDecisions) List(context.Context, string, constants.LabelStatus, *time.Time, *time.Time) ([]*entity.NormalizedDecision, error) {
	return s.recs, s.err
}

func TestExportDecisionsXLSX(t *testing.T) {
	repo := &stubDecisions{recs: []*entity.NormalizedDecision{
		{
			SourceID:       42,
			JurisdictionID: "7501",
			ChamberName:    "Première chambre",
			CaseNumber:     "2025/00123",
			LabelStatus:    constants.LabelStatusDone,
			PublishStatus:  constants.PublishStatusSuccess,
			Occultation: entity.Occultation{
				CategoriesToOmit: []constants.Category{constants.CategoryAdresse, constants.CategoryLocalite},
			},
			DateDecision: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			DateCreation: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportDecisionsXLSX(context.Background(), constants.LabelStatusDone, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Decisions", cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Source ID", get("A1"))
	assert.Equal(t, "42", get("A2"))
	assert.Equal(t, "7501", get("B2"))
	assert.Equal(t, "2025-03-10", get("E2"))
	assert.Equal(t, "done", get("F2"))
	assert.Equal(t, "adresse|localite", get("H2"))
}

func TestExportDecisionsXLSXQueryFailure(t *testing.T) {
	svc := NewService(&stubDecisions{err: errors.New("connection refused")}, nil)
	_, err := svc.ExportDecisionsXLSX(context.Background(), "", nil, nil)
	assert.Error(t, err)
}
