// Package rules holds the pure decision logic of the pipeline: the redaction
// rule engine, the eligibility classifier, and the version diff engine.
package rules

import (
	"strings"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

// flagCategories associates each "keep visible" flag with the categories
// omitted when the flag is NOT set. Order here fixes the first-seen order of
// the output list.
var flagCategories = []struct {
	keep       func(f *entity.RedactionForm) bool
	categories []constants.Category
}{
	{
		keep:       func(f *entity.RedactionForm) bool { return f.PersonneMorale },
		categories: []constants.Category{constants.CategoryPersonneMorale, constants.CategoryNumeroSiretSiren},
	},
	{
		keep:       func(f *entity.RedactionForm) bool { return f.PersonnePhysicoMoraleGeoMorale },
		categories: []constants.Category{constants.CategoryPersonneMorale, constants.CategoryLocalite, constants.CategoryNumeroSiretSiren},
	},
	{
		keep:       func(f *entity.RedactionForm) bool { return f.Adresse },
		categories: []constants.Category{constants.CategoryAdresse, constants.CategoryLocalite, constants.CategoryEtablissement},
	},
	{
		keep:       func(f *entity.RedactionForm) bool { return f.DateCivile },
		categories: []constants.Category{constants.CategoryDateNaissance, constants.CategoryDateDeces, constants.CategoryDateMariage},
	},
	{
		keep:       func(f *entity.RedactionForm) bool { return f.PlaqueImmatriculation },
		categories: []constants.Category{constants.CategoryPlaqueImmatriculation},
	},
	{
		keep:       func(f *entity.RedactionForm) bool { return f.Cadastre },
		categories: []constants.Category{constants.CategoryCadastre},
	},
	{
		keep:       func(f *entity.RedactionForm) bool { return f.ChaineNumeroIdentifiante },
		categories: []constants.Category{constants.CategoryInsee, constants.CategoryCompteBancaire, constants.CategoryPlaqueImmatriculation},
	},
	{
		keep:       func(f *entity.RedactionForm) bool { return f.CoordonneeElectronique },
		categories: []constants.Category{constants.CategorySiteWebSensible, constants.CategoryTelephoneFax},
	},
	{
		keep:       func(f *entity.RedactionForm) bool { return f.ProfessionnelMagistratGreffier },
		categories: []constants.Category{constants.CategoryProfessionnelMagistratGreffier},
	},
}

// fallbackCategories is the default redaction set applied to empty forms from
// jurisdictions known to submit malformed questionnaires.
var fallbackCategories = []constants.Category{
	constants.CategoryPersonnePhysique,
	constants.CategoryNumeroSiretSiren,
	constants.CategoryProfessionnelMagistratGreffier,
}

// ComputeOccultation maps the consent/redaction form into the redaction
// directive. A nil form behaves as an all-false, all-empty submission.
func ComputeOccultation(form *entity.RedactionForm, jurisdictionID string, erroneousJurisdictions []string) entity.Occultation {
	if form == nil {
		form = &entity.RedactionForm{}
	}

	if isErroneousEmptySubmission(form, jurisdictionID, erroneousJurisdictions) {
		return entity.Occultation{
			AdditionalTerms:       "",
			CategoriesToOmit:      append([]constants.Category(nil), fallbackCategories...),
			MotivationOccultation: false,
		}
	}

	var cats []constants.Category
	seen := make(map[constants.Category]struct{})
	for _, fc := range flagCategories {
		if fc.keep(form) {
			continue
		}
		for _, c := range fc.categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			cats = append(cats, c)
		}
	}

	return entity.Occultation{
		AdditionalTerms:       additionalTerms(form.ConserverElement, form.SupprimerElement),
		CategoriesToOmit:      cats,
		MotivationOccultation: form.MotifsDebatsChambreConseil || form.MotifsSecretAffaires,
	}
}

func isErroneousEmptySubmission(form *entity.RedactionForm, jurisdictionID string, erroneous []string) bool {
	listed := false
	for _, j := range erroneous {
		if j == jurisdictionID {
			listed = true
			break
		}
	}
	if !listed {
		return false
	}
	anyFlag := form.PersonneMorale || form.PersonnePhysicoMoraleGeoMorale || form.Adresse ||
		form.DateCivile || form.PlaqueImmatriculation || form.Cadastre ||
		form.ChaineNumeroIdentifiante || form.CoordonneeElectronique ||
		form.ProfessionnelMagistratGreffier ||
		form.MotifsDebatsChambreConseil || form.MotifsSecretAffaires
	return !anyFlag &&
		strings.TrimSpace(form.ConserverElement) == "" &&
		strings.TrimSpace(form.SupprimerElement) == ""
}

// additionalTerms merges keep terms (prefixed "+") and omit terms into a
// deduplicated pipe-joined list.
func additionalTerms(conserver, supprimer string) string {
	var terms []string
	seen := make(map[string]struct{})
	add := func(t string) {
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}

	for _, t := range strings.Split(conserver, "|") {
		if t = strings.TrimSpace(t); t != "" {
			add("+" + t)
		}
	}
	for _, t := range strings.Split(supprimer, "|") {
		add(strings.TrimSpace(t))
	}
	return strings.Join(terms, "|")
}
