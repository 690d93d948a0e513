package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrand/decisions-collector/internal/common"
)

const validRaw = `{
	"texteDecisionIntegre": "Le tribunal statue.\nPar ces motifs.",
	"metadonnees": {
		"idJuridiction": "7501",
		"idGroupement": "G1",
		"numeroDossier": "2025/00123",
		"dateDecision": "20250310",
		"libelleChambre": "Première chambre",
		"decisionPublique": true,
		"debatPublic": true
	}
}`

func TestParseRawDecisionValid(t *testing.T) {
	raw, err := ParseRawDecision([]byte(validRaw))
	require.NoError(t, err)
	assert.Equal(t, "7501", raw.Metadata.JurisdictionID)
	assert.Equal(t, "2025/00123", raw.Metadata.CaseNumber)
	assert.Equal(t, "20250310", raw.Metadata.DecisionDate)
	assert.True(t, raw.Metadata.DecisionPublic)
	assert.Contains(t, raw.OriginalText, "Par ces motifs")
}

func TestParseRawDecisionInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json at all`},
		{"missing metadonnees", `{"texteDecisionIntegre": "texte"}`},
		{"missing numeroDossier", `{"metadonnees": {"idJuridiction": "7501", "idGroupement": "G1", "dateDecision": "20250310"}}`},
		{"empty idJuridiction", `{"metadonnees": {"idJuridiction": "", "idGroupement": "G1", "numeroDossier": "1", "dateDecision": "20250310"}}`},
		{"dashed date", `{"metadonnees": {"idJuridiction": "7501", "idGroupement": "G1", "numeroDossier": "1", "dateDecision": "2025-03-10"}}`},
		{"impossible date", `{"metadonnees": {"idJuridiction": "7501", "idGroupement": "G1", "numeroDossier": "1", "dateDecision": "20251332"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRawDecision([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, common.IsValidation(err), "all parse failures are validation-class")
		})
	}
}
