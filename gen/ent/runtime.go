// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aferrand/decisions-collector/db/ent/schema"
	"github.com/aferrand/decisions-collector/gen/ent/decision"
	"github.com/aferrand/decisions-collector/gen/ent/extractfailure"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	decisionFields := schema.Decision{}.Fields()
	_ = decisionFields
	// decisionDescSourceName is the schema descriptor for source_name field.
	decisionDescSourceName := decisionFields[2].Descriptor()
	// decision.SourceNameValidator is a validator for the "source_name" field. It is called by the builders before save.
	decision.SourceNameValidator = decisionDescSourceName.Validators[0].(func(string) error)
	// decisionDescJurisdictionID is the schema descriptor for jurisdiction_id field.
	decisionDescJurisdictionID := decisionFields[4].Descriptor()
	// decision.JurisdictionIDValidator is a validator for the "jurisdiction_id" field. It is called by the builders before save.
	decision.JurisdictionIDValidator = decisionDescJurisdictionID.Validators[0].(func(string) error)
	// decisionDescCaseNumber is the schema descriptor for case_number field.
	decisionDescCaseNumber := decisionFields[10].Descriptor()
	// decision.CaseNumberValidator is a validator for the "case_number" field. It is called by the builders before save.
	decision.CaseNumberValidator = decisionDescCaseNumber.Validators[0].(func(string) error)
	// decisionDescPublic is the schema descriptor for public field.
	decisionDescPublic := decisionFields[16].Descriptor()
	// decision.DefaultPublic holds the default value on creation for the public field.
	decision.DefaultPublic = decisionDescPublic.Default.(bool)
	// decisionDescDebatPublic is the schema descriptor for debat_public field.
	decisionDescDebatPublic := decisionFields[17].Descriptor()
	// decision.DefaultDebatPublic holds the default value on creation for the debat_public field.
	decision.DefaultDebatPublic = decisionDescDebatPublic.Default.(bool)
	// decisionDescSelection is the schema descriptor for selection field.
	decisionDescSelection := decisionFields[18].Descriptor()
	// decision.DefaultSelection holds the default value on creation for the selection field.
	decision.DefaultSelection = decisionDescSelection.Default.(bool)
	// decisionDescOccultationMotivation is the schema descriptor for occultation_motivation field.
	decisionDescOccultationMotivation := decisionFields[23].Descriptor()
	// decision.DefaultOccultationMotivation holds the default value on creation for the occultation_motivation field.
	decision.DefaultOccultationMotivation = decisionDescOccultationMotivation.Default.(bool)
	// decisionDescLabelStatus is the schema descriptor for label_status field.
	decisionDescLabelStatus := decisionFields[24].Descriptor()
	// decision.LabelStatusValidator is a validator for the "label_status" field. It is called by the builders before save.
	decision.LabelStatusValidator = decisionDescLabelStatus.Validators[0].(func(string) error)
	// decisionDescPublishStatus is the schema descriptor for publish_status field.
	decisionDescPublishStatus := decisionFields[25].Descriptor()
	// decision.PublishStatusValidator is a validator for the "publish_status" field. It is called by the builders before save.
	decision.PublishStatusValidator = decisionDescPublishStatus.Validators[0].(func(string) error)
	// decisionDescDateCreation is the schema descriptor for date_creation field.
	decisionDescDateCreation := decisionFields[27].Descriptor()
	// decision.DefaultDateCreation holds the default value on creation for the date_creation field.
	decision.DefaultDateCreation = decisionDescDateCreation.Default.(func() time.Time)
	// decisionDescUpdatedAt is the schema descriptor for updated_at field.
	decisionDescUpdatedAt := decisionFields[28].Descriptor()
	// decision.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	decision.DefaultUpdatedAt = decisionDescUpdatedAt.Default.(func() time.Time)
	// decision.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	decision.UpdateDefaultUpdatedAt = decisionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// decisionDescID is the schema descriptor for id field.
	decisionDescID := decisionFields[0].Descriptor()
	// decision.DefaultID holds the default value on creation for the id field.
	decision.DefaultID = decisionDescID.Default.(func() uuid.UUID)
	extractfailureFields := schema.ExtractFailure{}.Fields()
	_ = extractfailureFields
	// extractfailureDescFilename is the schema descriptor for filename field.
	extractfailureDescFilename := extractfailureFields[0].Descriptor()
	// extractfailure.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	extractfailure.FilenameValidator = extractfailureDescFilename.Validators[0].(func(string) error)
	// extractfailureDescAttempts is the schema descriptor for attempts field.
	extractfailureDescAttempts := extractfailureFields[1].Descriptor()
	// extractfailure.DefaultAttempts holds the default value on creation for the attempts field.
	extractfailure.DefaultAttempts = extractfailureDescAttempts.Default.(int)
	// extractfailureDescUpdatedAt is the schema descriptor for updated_at field.
	extractfailureDescUpdatedAt := extractfailureFields[3].Descriptor()
	// extractfailure.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractfailure.DefaultUpdatedAt = extractfailureDescUpdatedAt.Default.(func() time.Time)
	// extractfailure.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractfailure.UpdateDefaultUpdatedAt = extractfailureDescUpdatedAt.UpdateDefault.(func() time.Time)
}
