package constants

// Category is a redaction (occultation) category understood by the
// downstream annotation tooling. Stable values, store exact strings.
type Category string

const (
	CategoryAdresse                        Category = "adresse"
	CategoryLocalite                       Category = "localite"
	CategoryEtablissement                  Category = "etablissement"
	CategoryPersonneMorale                 Category = "personneMorale"
	CategoryPersonnePhysique               Category = "personnePhysique"
	CategoryNumeroSiretSiren               Category = "numeroSiretSiren"
	CategoryDateNaissance                  Category = "dateNaissance"
	CategoryDateDeces                      Category = "dateDeces"
	CategoryDateMariage                    Category = "dateMariage"
	CategoryPlaqueImmatriculation          Category = "plaqueImmatriculation"
	CategoryCadastre                       Category = "cadastre"
	CategoryInsee                          Category = "insee"
	CategoryCompteBancaire                 Category = "compteBancaire"
	CategorySiteWebSensible                Category = "siteWebSensible"
	CategoryTelephoneFax                   Category = "telephoneFax"
	CategoryProfessionnelMagistratGreffier Category = "professionnelMagistratGreffier"
)

// AsStringSlice converts a category list to plain strings, preserving order.
func AsStringSlice(cats []Category) []string {
	result := make([]string, len(cats))
	for i, c := range cats {
		result[i] = string(c)
	}
	return result
}
