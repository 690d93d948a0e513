package pipeline

import (
	"time"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

// MapDecision projects validated metadata plus cleaned text into the
// canonical decision shape. The projection is total: every target field is
// assigned here, so a schema change cannot silently drop data.
//
// jurisdictionCode and jurisdictionName are not supplied by the feed yet and
// stay empty until the upstream form carries them.
func MapDecision(raw *entity.RawDecision, cleanedText string, now time.Time) (*entity.NormalizedDecision, error) {
	dateDecision, err := entity.ParseDecisionDate(raw.Metadata.DecisionDate)
	if err != nil {
		return nil, err
	}

	m := raw.Metadata
	return &entity.NormalizedDecision{
		SourceID:   entity.SourceID(m.JurisdictionID, m.CaseNumber, m.DecisionDate),
		SourceName: constants.SourceName,

		OriginalText: cleanedText,

		JurisdictionID:   m.JurisdictionID,
		JurisdictionCode: "",
		JurisdictionName: "",
		ChamberID:        m.ChamberID,
		ChamberName:      m.ChamberName,
		GroupID:          m.GroupID,
		CaseNumber:       m.CaseNumber,
		RegisterNumber:   m.RegisterNumber,
		MatterCode:       m.MatterCode,
		MatterLabel:      m.MatterLabel,
		ProcedureCode:    m.ProcedureCode,
		Solution:         m.Solution,

		Public:      m.DecisionPublic,
		DebatPublic: m.DebatPublic,
		Selection:   m.Selection,

		Parties:     m.Parties,
		Composition: m.Composition,

		LabelStatus:   constants.LabelStatusToBeTreated,
		PublishStatus: constants.PublishStatusToBePublished,

		DateDecision: dateDecision,
		DateCreation: now.UTC(),
	}, nil
}
