package constants

// LabelStatus is the canonical eligibility/workflow status for a decision.
type LabelStatus string

// Stable values (store these exact strings in DB).
const (
	LabelStatusToBeTreated LabelStatus = "toBeTreated"
	LabelStatusLoaded      LabelStatus = "loaded"
	LabelStatusDone        LabelStatus = "done"
	LabelStatusExported    LabelStatus = "exported"
	LabelStatusBlocked     LabelStatus = "blocked"

	LabelStatusIgnoredDebatNonPublic           LabelStatus = "IGNORED_DEBAT_NON_PUBLIC"
	LabelStatusIgnoredDecisionNonPublique      LabelStatus = "IGNORED_DECISION_NON_PUBLIQUE"
	LabelStatusIgnoredDateDecisionIncoherente  LabelStatus = "IGNORED_DATE_DECISION_INCOHERENTE"
	LabelStatusIgnoredDateAvantMiseEnService   LabelStatus = "IGNORED_DATE_AVANT_MISE_EN_SERVICE"
	LabelStatusIgnoredJuridictionEnPhaseDeTest LabelStatus = "IGNORED_JURIDICTION_EN_PHASE_DE_TEST"
)

// PublishStatus is the publication pipeline state downstream of labeling.
type PublishStatus string

const (
	PublishStatusToBePublished    PublishStatus = "toBePublished"
	PublishStatusPending          PublishStatus = "pending"
	PublishStatusSuccess          PublishStatus = "success"
	PublishStatusUnpublished      PublishStatus = "unpublished"
	PublishStatusFailurePreparing PublishStatus = "failure_preparing"
	PublishStatusFailureIndexing  PublishStatus = "failure_indexing"
	PublishStatusBlocked          PublishStatus = "blocked"
)

// IsIgnoredDateStatus reports whether the status is one of the two
// date-related ignore reasons that force publication blocking on patch.
func IsIgnoredDateStatus(s LabelStatus) bool {
	return s == LabelStatusIgnoredDateDecisionIncoherente ||
		s == LabelStatusIgnoredDateAvantMiseEnService
}

// terminalPublishStatuses are publish states that restart the publication
// cycle when the underlying decision changes.
var terminalPublishStatuses = map[PublishStatus]struct{}{
	PublishStatusSuccess:          {},
	PublishStatusUnpublished:      {},
	PublishStatusFailurePreparing: {},
	PublishStatusFailureIndexing:  {},
}

// IsTerminalPublishStatus reports whether a changed decision in this publish
// state must be re-queued for publication.
func IsTerminalPublishStatus(s PublishStatus) bool {
	_, ok := terminalPublishStatuses[s]
	return ok
}
