package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

func TestComputeOccultationAllFlagsFalse(t *testing.T) {
	occ := ComputeOccultation(&entity.RedactionForm{}, "7501", nil)

	// Every category reachable through a flag shows up exactly once.
	seen := map[constants.Category]int{}
	for _, c := range occ.CategoriesToOmit {
		seen[c]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "category %s duplicated", c)
	}
	assert.Contains(t, occ.CategoriesToOmit, constants.CategoryPersonneMorale)
	assert.Contains(t, occ.CategoriesToOmit, constants.CategoryAdresse)
	assert.Contains(t, occ.CategoriesToOmit, constants.CategoryPlaqueImmatriculation)
	assert.NotContains(t, occ.CategoriesToOmit, constants.CategoryPersonnePhysique)
	assert.Empty(t, occ.AdditionalTerms)
	assert.False(t, occ.MotivationOccultation)
}

func TestComputeOccultationFlagMapping(t *testing.T) {
	tests := []struct {
		name    string
		form    entity.RedactionForm
		absent  []constants.Category
		present []constants.Category
	}{
		{
			name:    "dateCivile kept visible",
			form:    entity.RedactionForm{DateCivile: true},
			absent:  []constants.Category{constants.CategoryDateNaissance, constants.CategoryDateDeces, constants.CategoryDateMariage},
			present: []constants.Category{constants.CategoryAdresse},
		},
		{
			name: "overlapping flags share plaqueImmatriculation",
			form: entity.RedactionForm{PlaqueImmatriculation: true},
			// chaineNumeroIdentifiante still contributes the category.
			present: []constants.Category{constants.CategoryPlaqueImmatriculation, constants.CategoryInsee},
		},
		{
			name:    "coordonneeElectronique kept visible",
			form:    entity.RedactionForm{CoordonneeElectronique: true},
			absent:  []constants.Category{constants.CategorySiteWebSensible, constants.CategoryTelephoneFax},
			present: []constants.Category{constants.CategoryCadastre},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ := ComputeOccultation(&tt.form, "7501", nil)
			for _, c := range tt.absent {
				assert.NotContains(t, occ.CategoriesToOmit, c)
			}
			for _, c := range tt.present {
				assert.Contains(t, occ.CategoriesToOmit, c)
			}
		})
	}
}

func TestComputeOccultationMotivation(t *testing.T) {
	occ := ComputeOccultation(&entity.RedactionForm{MotifsSecretAffaires: true}, "7501", nil)
	assert.True(t, occ.MotivationOccultation)

	occ = ComputeOccultation(&entity.RedactionForm{MotifsDebatsChambreConseil: true}, "7501", nil)
	assert.True(t, occ.MotivationOccultation)
}

func TestComputeOccultationAdditionalTerms(t *testing.T) {
	form := &entity.RedactionForm{
		ConserverElement: "Dupont | SARL Exemple|Dupont",
		SupprimerElement: "12 rue des Lilas|SARL Exemple",
	}
	occ := ComputeOccultation(form, "7501", nil)

	terms := strings.Split(occ.AdditionalTerms, "|")
	assert.Equal(t, []string{"+Dupont", "+SARL Exemple", "12 rue des Lilas", "SARL Exemple"}, terms)

	// No term appears twice.
	seen := map[string]bool{}
	for _, term := range terms {
		assert.False(t, seen[term], "term %q duplicated", term)
		seen[term] = true
	}
}

func TestComputeOccultationErroneousFallback(t *testing.T) {
	erroneous := []string{"9999"}

	occ := ComputeOccultation(&entity.RedactionForm{}, "9999", erroneous)
	assert.Equal(t, fallbackCategories, occ.CategoriesToOmit)
	assert.Empty(t, occ.AdditionalTerms)
	assert.False(t, occ.MotivationOccultation)

	// A nil form from a listed jurisdiction falls back too.
	occ = ComputeOccultation(nil, "9999", erroneous)
	assert.Equal(t, fallbackCategories, occ.CategoriesToOmit)
}

func TestComputeOccultationFallbackNotTriggered(t *testing.T) {
	erroneous := []string{"9999"}

	// Unlisted jurisdiction: normal path even with an empty form.
	occ := ComputeOccultation(&entity.RedactionForm{}, "7501", erroneous)
	assert.NotEqual(t, fallbackCategories, occ.CategoriesToOmit)

	// Listed jurisdiction but a flag is set: the form is meaningful.
	occ = ComputeOccultation(&entity.RedactionForm{Adresse: true}, "9999", erroneous)
	assert.NotContains(t, occ.CategoriesToOmit, constants.CategoryPersonnePhysique)

	// Listed jurisdiction but free text is present.
	occ = ComputeOccultation(&entity.RedactionForm{SupprimerElement: "Dupont"}, "9999", erroneous)
	assert.Equal(t, "Dupont", occ.AdditionalTerms)
	assert.NotContains(t, occ.CategoriesToOmit, constants.CategoryPersonnePhysique)
}
