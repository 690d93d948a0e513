package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

func diffFixture() *entity.NormalizedDecision {
	return &entity.NormalizedDecision{
		SourceID:       42,
		OriginalText:   "Le tribunal statue.\nPar ces motifs.",
		JurisdictionID: "7501",
		ChamberID:      "CH1",
		ChamberName:    "Première chambre",
		GroupID:        "G1",
		CaseNumber:     "2025/00123",
		Public:         true,
		DebatPublic:    true,
		Parties: []entity.Party{
			{Type: "PP", Role: "demandeur", Name: "Dupont", FirstName: "Jean"},
		},
		Occultation: entity.Occultation{
			AdditionalTerms:  "+Dupont",
			CategoriesToOmit: []constants.Category{constants.CategoryAdresse, constants.CategoryLocalite},
		},
		DateDecision: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeDiffIdenticalVersions(t *testing.T) {
	a := diffFixture()
	b := diffFixture()
	assert.True(t, ComputeDiff(a, b).Empty())
	assert.True(t, ComputeDiff(a, a).Empty())
}

func TestComputeDiffNilVersusEmptySlices(t *testing.T) {
	a := diffFixture()
	b := diffFixture()
	a.Parties = nil
	b.Parties = []entity.Party{}
	a.Composition = nil
	b.Composition = []entity.Magistrate{}
	assert.True(t, ComputeDiff(a, b).Empty())
}

func TestComputeDiffMajorFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *entity.NormalizedDecision)
		field  string
	}{
		{"text change", func(d *entity.NormalizedDecision) { d.OriginalText = "Texte rectifié.\nPar ces motifs." }, "originalText"},
		{"publicity change", func(d *entity.NormalizedDecision) { d.Public = false }, "public"},
		{"debat change", func(d *entity.NormalizedDecision) { d.DebatPublic = false }, "debatPublic"},
		{"terms change", func(d *entity.NormalizedDecision) { d.Occultation.AdditionalTerms = "" }, "occultation.additionalTerms"},
		{"category added", func(d *entity.NormalizedDecision) {
			d.Occultation.CategoriesToOmit = append(d.Occultation.CategoriesToOmit, constants.CategoryCadastre)
		}, "occultation.categoriesToOmit"},
		{"motivation change", func(d *entity.NormalizedDecision) { d.Occultation.MotivationOccultation = true }, "occultation.motivationOccultation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := diffFixture()
			b := diffFixture()
			tt.mutate(b)
			diff := ComputeDiff(a, b)
			assert.Equal(t, []string{tt.field}, diff.Major)
			assert.Empty(t, diff.Minor)

			// Same detection regardless of argument order.
			reversed := ComputeDiff(b, a)
			assert.Equal(t, diff.Major, reversed.Major)
			assert.Equal(t, diff.Minor, reversed.Minor)
		})
	}
}

func TestComputeDiffMinorFields(t *testing.T) {
	a := diffFixture()
	b := diffFixture()
	b.ChamberName = "Deuxième chambre"
	b.Solution = "déboute"
	b.Parties = append(b.Parties, entity.Party{Type: "PM", Role: "défendeur", Name: "SARL Exemple"})

	diff := ComputeDiff(a, b)
	assert.Empty(t, diff.Major)
	assert.Equal(t, []string{"chamberName", "parties", "solution"}, diff.Minor)
}

func TestComputeDiffCategoryOrderIgnored(t *testing.T) {
	a := diffFixture()
	b := diffFixture()
	b.Occultation.CategoriesToOmit = []constants.Category{constants.CategoryLocalite, constants.CategoryAdresse}

	assert.True(t, ComputeDiff(a, b).Empty())
	assert.True(t, ComputeDiff(b, a).Empty())
}

func TestComputeDiffListsSorted(t *testing.T) {
	a := diffFixture()
	b := diffFixture()
	b.Solution = "déboute"
	b.ChamberID = "CH2"
	b.Public = false
	b.OriginalText = "autre texte\n"

	diff := ComputeDiff(a, b)
	assert.Equal(t, []string{"originalText", "public"}, diff.Major)
	assert.Equal(t, []string{"chamberId", "solution"}, diff.Minor)
}
