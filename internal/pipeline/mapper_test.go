package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

func TestMapDecision(t *testing.T) {
	raw := &entity.RawDecision{
		OriginalText: "texte brut",
		Metadata: entity.Metadata{
			JurisdictionID: "7501",
			GroupID:        "G1",
			CaseNumber:     "2025/00123",
			DecisionDate:   "20250310",
			ChamberID:      "CH1",
			ChamberName:    "Première chambre",
			MatterCode:     "58Z",
			MatterLabel:    "procédures collectives",
			ProcedureCode:  "CONT",
			RegisterNumber: "RG 25/00123",
			Solution:       "déboute",
			DecisionPublic: true,
			DebatPublic:    true,
			Selection:      true,
			Parties: []entity.Party{
				{Type: "PP", Role: "demandeur", Name: "Dupont"},
			},
			Composition: []entity.Magistrate{
				{Function: "président", Name: "Martin"},
			},
		},
	}
	now := time.Date(2025, 3, 12, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	d, err := MapDecision(raw, "texte nettoyé\nsur deux lignes", now)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceID("7501", "2025/00123", "20250310"), d.SourceID)
	assert.Equal(t, constants.SourceName, d.SourceName)
	assert.Equal(t, "texte nettoyé\nsur deux lignes", d.OriginalText)
	assert.Equal(t, "7501", d.JurisdictionID)
	assert.Equal(t, "CH1", d.ChamberID)
	assert.Equal(t, "RG 25/00123", d.RegisterNumber)
	assert.True(t, d.Public)
	assert.True(t, d.DebatPublic)
	assert.Len(t, d.Parties, 1)
	assert.Len(t, d.Composition, 1)

	assert.Equal(t, constants.LabelStatusToBeTreated, d.LabelStatus)
	assert.Equal(t, constants.PublishStatusToBePublished, d.PublishStatus)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), d.DateDecision)
	assert.Equal(t, now.UTC(), d.DateCreation)
	assert.Equal(t, time.UTC, d.DateCreation.Location())
}

func TestMapDecisionRejectsBadDate(t *testing.T) {
	raw := &entity.RawDecision{
		Metadata: entity.Metadata{
			JurisdictionID: "7501",
			CaseNumber:     "2025/00123",
			DecisionDate:   "2025-03-10",
		},
	}
	_, err := MapDecision(raw, "texte", time.Now())
	assert.Error(t, err)
}
