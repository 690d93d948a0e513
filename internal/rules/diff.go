package rules

import (
	"reflect"
	"sort"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

// ComputeDiff structurally compares two versions of a decision. Major fields
// force a full overwrite downstream; minor fields only need a patch. Both
// lists come back sorted by field name.
func ComputeDiff(old, new *entity.NormalizedDecision) entity.DecisionDiff {
	var diff entity.DecisionDiff

	major := func(name string, changed bool) {
		if changed {
			diff.Major = append(diff.Major, name)
		}
	}
	minor := func(name string, changed bool) {
		if changed {
			diff.Minor = append(diff.Minor, name)
		}
	}

	major("debatPublic", old.DebatPublic != new.DebatPublic)
	major("occultation.additionalTerms", old.Occultation.AdditionalTerms != new.Occultation.AdditionalTerms)
	major("occultation.categoriesToOmit", !sameCategorySet(old.Occultation.CategoriesToOmit, new.Occultation.CategoriesToOmit))
	major("occultation.motivationOccultation", old.Occultation.MotivationOccultation != new.Occultation.MotivationOccultation)
	major("originalText", old.OriginalText != new.OriginalText)
	major("public", old.Public != new.Public)

	minor("chamberId", old.ChamberID != new.ChamberID)
	minor("chamberName", old.ChamberName != new.ChamberName)
	minor("composition", !sameComposition(old.Composition, new.Composition))
	minor("dateDecision", !old.DateDecision.Equal(new.DateDecision))
	minor("groupId", old.GroupID != new.GroupID)
	minor("jurisdictionCode", old.JurisdictionCode != new.JurisdictionCode)
	minor("jurisdictionName", old.JurisdictionName != new.JurisdictionName)
	minor("matterCode", old.MatterCode != new.MatterCode)
	minor("matterLabel", old.MatterLabel != new.MatterLabel)
	minor("parties", !sameParties(old.Parties, new.Parties))
	minor("procedureCode", old.ProcedureCode != new.ProcedureCode)
	minor("registerNumber", old.RegisterNumber != new.RegisterNumber)
	minor("selection", old.Selection != new.Selection)
	minor("solution", old.Solution != new.Solution)

	sort.Strings(diff.Major)
	sort.Strings(diff.Minor)
	return diff
}

// sameCategorySet compares category lists as sets; ordering is presentation
// detail, not a version change.
func sameCategorySet(a, b []constants.Category) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[constants.Category]int, len(a))
	for _, c := range a {
		set[c]++
	}
	for _, c := range b {
		set[c]--
		if set[c] < 0 {
			return false
		}
	}
	return true
}

func sameParties(a, b []entity.Party) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func sameComposition(a, b []entity.Magistrate) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
