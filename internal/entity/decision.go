package entity

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/aferrand/decisions-collector/constants"
)

// RawDecision is the submission as received from the court, stored under
// <decisionId>.json in the raw store. Immutable once normalized.
type RawDecision struct {
	OriginalText string    `json:"texteDecisionIntegre"`
	Metadata     Metadata  `json:"metadonnees"`
	ReceivedAt   time.Time `json:"dateReception"`
}

// Metadata is the structured form accompanying a raw decision.
type Metadata struct {
	IDDecision     string `json:"idDecision"`
	JurisdictionID string `json:"idJuridiction"`
	GroupID        string `json:"idGroupement"`
	CaseNumber     string `json:"numeroDossier"`
	// DecisionDate is YYYYMMDD; malformed values are rejected upstream of mapping.
	DecisionDate string `json:"dateDecision"`

	JurisdictionCode string `json:"codeJuridiction,omitempty"`
	JurisdictionName string `json:"libelleJuridiction,omitempty"`
	ChamberID        string `json:"idChambre,omitempty"`
	ChamberName      string `json:"libelleChambre,omitempty"`
	MatterCode       string `json:"codeMatiereCivile,omitempty"`
	MatterLabel      string `json:"libelleMatiere,omitempty"`
	ProcedureCode    string `json:"codeProcedure,omitempty"`
	RegisterNumber   string `json:"numeroRoleGeneral,omitempty"`
	Solution         string `json:"solution,omitempty"`

	DecisionPublic bool `json:"decisionPublique"`
	DebatPublic    bool `json:"debatPublic"`
	Selection      bool `json:"selection"`

	Parties     []Party      `json:"parties,omitempty"`
	Composition []Magistrate `json:"composition,omitempty"`

	RedactionForm *RedactionForm `json:"occultationsComplementaires,omitempty"`
}

// Party is one named party to the case.
type Party struct {
	Type      string `json:"type,omitempty"`
	Role      string `json:"role,omitempty"`
	Name      string `json:"nom,omitempty"`
	FirstName string `json:"prenom,omitempty"`
}

// Magistrate is one member of the deciding bench.
type Magistrate struct {
	Function  string `json:"fonction,omitempty"`
	Name      string `json:"nom,omitempty"`
	FirstName string `json:"prenom,omitempty"`
}

// RedactionForm is the consent/redaction questionnaire submitted with the
// decision. Boolean flags are "keep this visible" switches; the two free-text
// fields are pipe-delimited term lists.
type RedactionForm struct {
	PersonneMorale                 bool `json:"personneMorale"`
	PersonnePhysicoMoraleGeoMorale bool `json:"personnePhysicoMoraleGeoMorale"`
	Adresse                        bool `json:"adresse"`
	DateCivile                     bool `json:"dateCivile"`
	PlaqueImmatriculation          bool `json:"plaqueImmatriculation"`
	Cadastre                       bool `json:"cadastre"`
	ChaineNumeroIdentifiante       bool `json:"chaineNumeroIdentifiante"`
	CoordonneeElectronique         bool `json:"coordonneeElectronique"`
	ProfessionnelMagistratGreffier bool `json:"professionnelMagistratGreffier"`

	MotifsDebatsChambreConseil bool `json:"motifsDebatsChambreConseil"`
	MotifsSecretAffaires       bool `json:"motifsSecretAffaires"`

	ConserverElement string `json:"conserverElement"`
	SupprimerElement string `json:"supprimerElement"`
}

// Occultation is the computed redaction directive attached to a normalized decision.
type Occultation struct {
	AdditionalTerms       string                `json:"additionalTerms"`
	CategoriesToOmit      []constants.Category  `json:"categoriesToOmit"`
	MotivationOccultation bool                  `json:"motivationOccultation"`
}

// NormalizedDecision is the canonical record held by the downstream decision
// database, one per distinct SourceID.
type NormalizedDecision struct {
	ID       uuid.UUID `json:"id"`
	SourceID int64     `json:"source_id"`
	// SourceName identifies the feed ("juritcom").
	SourceName string `json:"source_name"`

	OriginalText string `json:"original_text"`

	JurisdictionID   string `json:"jurisdiction_id"`
	JurisdictionCode string `json:"jurisdiction_code"`
	JurisdictionName string `json:"jurisdiction_name"`
	ChamberID        string `json:"chamber_id"`
	ChamberName      string `json:"chamber_name"`
	GroupID          string `json:"group_id"`
	CaseNumber       string `json:"case_number"`
	RegisterNumber   string `json:"register_number"`
	MatterCode       string `json:"matter_code"`
	MatterLabel      string `json:"matter_label"`
	ProcedureCode    string `json:"procedure_code"`
	Solution         string `json:"solution"`

	Public      bool `json:"public"`
	DebatPublic bool `json:"debat_public"`
	Selection   bool `json:"selection"`

	Parties     []Party      `json:"parties"`
	Composition []Magistrate `json:"composition"`

	Occultation Occultation `json:"occultation"`

	LabelStatus   constants.LabelStatus   `json:"label_status"`
	PublishStatus constants.PublishStatus `json:"publish_status"`

	DateDecision time.Time `json:"date_decision"`
	DateCreation time.Time `json:"date_creation"`
}

// SourceID derives the stable cross-reference key for a decision. It is a
// hash of the decision identifier, not the database primary key.
func SourceID(jurisdictionID, caseNumber, decisionDate string) int64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s/%s/%s", jurisdictionID, caseNumber, decisionDate)
	// Mask the sign bit so the value survives storage as a positive bigint.
	return int64(h.Sum64() & 0x7fffffffffffffff)
}

// ParseDecisionDate parses the YYYYMMDD metadata date.
func ParseDecisionDate(s string) (time.Time, error) {
	return time.Parse("20060102", s)
}
