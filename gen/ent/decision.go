// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aferrand/decisions-collector/gen/ent/decision"
	"github.com/google/uuid"
)

// Decision is the model entity for the Decision schema.
type Decision struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID int64 `json:"source_id,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// OriginalText holds the value of the "original_text" field.
	OriginalText string `json:"original_text,omitempty"`
	// JurisdictionID holds the value of the "jurisdiction_id" field.
	JurisdictionID string `json:"jurisdiction_id,omitempty"`
	// JurisdictionCode holds the value of the "jurisdiction_code" field.
	JurisdictionCode string `json:"jurisdiction_code,omitempty"`
	// JurisdictionName holds the value of the "jurisdiction_name" field.
	JurisdictionName string `json:"jurisdiction_name,omitempty"`
	// ChamberID holds the value of the "chamber_id" field.
	ChamberID string `json:"chamber_id,omitempty"`
	// ChamberName holds the value of the "chamber_name" field.
	ChamberName string `json:"chamber_name,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// CaseNumber holds the value of the "case_number" field.
	CaseNumber string `json:"case_number,omitempty"`
	// RegisterNumber holds the value of the "register_number" field.
	RegisterNumber string `json:"register_number,omitempty"`
	// MatterCode holds the value of the "matter_code" field.
	MatterCode string `json:"matter_code,omitempty"`
	// MatterLabel holds the value of the "matter_label" field.
	MatterLabel string `json:"matter_label,omitempty"`
	// ProcedureCode holds the value of the "procedure_code" field.
	ProcedureCode string `json:"procedure_code,omitempty"`
	// Solution holds the value of the "solution" field.
	Solution string `json:"solution,omitempty"`
	// Public holds the value of the "public" field.
	Public bool `json:"public,omitempty"`
	// DebatPublic holds the value of the "debat_public" field.
	DebatPublic bool `json:"debat_public,omitempty"`
	// Selection holds the value of the "selection" field.
	Selection bool `json:"selection,omitempty"`
	// Parties holds the value of the "parties" field.
	Parties json.RawMessage `json:"parties,omitempty"`
	// Composition holds the value of the "composition" field.
	Composition json.RawMessage `json:"composition,omitempty"`
	// OccultationAdditionalTerms holds the value of the "occultation_additional_terms" field.
	OccultationAdditionalTerms string `json:"occultation_additional_terms,omitempty"`
	// OccultationCategories holds the value of the "occultation_categories" field.
	OccultationCategories []string `json:"occultation_categories,omitempty"`
	// OccultationMotivation holds the value of the "occultation_motivation" field.
	OccultationMotivation bool `json:"occultation_motivation,omitempty"`
	// LabelStatus holds the value of the "label_status" field.
	LabelStatus string `json:"label_status,omitempty"`
	// PublishStatus holds the value of the "publish_status" field.
	PublishStatus string `json:"publish_status,omitempty"`
	// DateDecision holds the value of the "date_decision" field.
	DateDecision time.Time `json:"date_decision,omitempty"`
	// DateCreation holds the value of the "date_creation" field.
	DateCreation time.Time `json:"date_creation,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Decision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decision.FieldParties, decision.FieldComposition, decision.FieldOccultationCategories:
			values[i] = new([]byte)
		case decision.FieldPublic, decision.FieldDebatPublic, decision.FieldSelection, decision.FieldOccultationMotivation:
			values[i] = new(sql.NullBool)
		case decision.FieldSourceID:
			values[i] = new(sql.NullInt64)
		case decision.FieldSourceName, decision.FieldOriginalText, decision.FieldJurisdictionID, decision.FieldJurisdictionCode, decision.FieldJurisdictionName, decision.FieldChamberID, decision.FieldChamberName, decision.FieldGroupID, decision.FieldCaseNumber, decision.FieldRegisterNumber, decision.FieldMatterCode, decision.FieldMatterLabel, decision.FieldProcedureCode, decision.FieldSolution, decision.FieldOccultationAdditionalTerms, decision.FieldLabelStatus, decision.FieldPublishStatus:
			values[i] = new(sql.NullString)
		case decision.FieldDateDecision, decision.FieldDateCreation, decision.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case decision.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Decision fields.
func (_m *Decision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decision.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case decision.FieldSourceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.Int64
			}
		case decision.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case decision.FieldOriginalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value.Valid {
				_m.OriginalText = value.String
			}
		case decision.FieldJurisdictionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field jurisdiction_id", values[i])
			} else if value.Valid {
				_m.JurisdictionID = value.String
			}
		case decision.FieldJurisdictionCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field jurisdiction_code", values[i])
			} else if value.Valid {
				_m.JurisdictionCode = value.String
			}
		case decision.FieldJurisdictionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field jurisdiction_name", values[i])
			} else if value.Valid {
				_m.JurisdictionName = value.String
			}
		case decision.FieldChamberID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chamber_id", values[i])
			} else if value.Valid {
				_m.ChamberID = value.String
			}
		case decision.FieldChamberName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chamber_name", values[i])
			} else if value.Valid {
				_m.ChamberName = value.String
			}
		case decision.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case decision.FieldCaseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_number", values[i])
			} else if value.Valid {
				_m.CaseNumber = value.String
			}
		case decision.FieldRegisterNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field register_number", values[i])
			} else if value.Valid {
				_m.RegisterNumber = value.String
			}
		case decision.FieldMatterCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matter_code", values[i])
			} else if value.Valid {
				_m.MatterCode = value.String
			}
		case decision.FieldMatterLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matter_label", values[i])
			} else if value.Valid {
				_m.MatterLabel = value.String
			}
		case decision.FieldProcedureCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field procedure_code", values[i])
			} else if value.Valid {
				_m.ProcedureCode = value.String
			}
		case decision.FieldSolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution", values[i])
			} else if value.Valid {
				_m.Solution = value.String
			}
		case decision.FieldPublic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field public", values[i])
			} else if value.Valid {
				_m.Public = value.Bool
			}
		case decision.FieldDebatPublic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field debat_public", values[i])
			} else if value.Valid {
				_m.DebatPublic = value.Bool
			}
		case decision.FieldSelection:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field selection", values[i])
			} else if value.Valid {
				_m.Selection = value.Bool
			}
		case decision.FieldParties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parties); err != nil {
					return fmt.Errorf("unmarshal field parties: %w", err)
				}
			}
		case decision.FieldComposition:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field composition", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Composition); err != nil {
					return fmt.Errorf("unmarshal field composition: %w", err)
				}
			}
		case decision.FieldOccultationAdditionalTerms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field occultation_additional_terms", values[i])
			} else if value.Valid {
				_m.OccultationAdditionalTerms = value.String
			}
		case decision.FieldOccultationCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field occultation_categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OccultationCategories); err != nil {
					return fmt.Errorf("unmarshal field occultation_categories: %w", err)
				}
			}
		case decision.FieldOccultationMotivation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field occultation_motivation", values[i])
			} else if value.Valid {
				_m.OccultationMotivation = value.Bool
			}
		case decision.FieldLabelStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label_status", values[i])
			} else if value.Valid {
				_m.LabelStatus = value.String
			}
		case decision.FieldPublishStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publish_status", values[i])
			} else if value.Valid {
				_m.PublishStatus = value.String
			}
		case decision.FieldDateDecision:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_decision", values[i])
			} else if value.Valid {
				_m.DateDecision = value.Time
			}
		case decision.FieldDateCreation:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_creation", values[i])
			} else if value.Valid {
				_m.DateCreation = value.Time
			}
		case decision.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Decision.
// This includes values selected through modifiers, order, etc.
func (_m *Decision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Decision.
// Note that you need to call Decision.Unwrap() before calling this method if this Decision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Decision) Update() *DecisionUpdateOne {
	return NewDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Decision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Decision) Unwrap() *Decision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Decision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Decision) String() string {
	var builder strings.Builder
	builder.WriteString("Decision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceID))
	builder.WriteString(", ")
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("original_text=")
	builder.WriteString(_m.OriginalText)
	builder.WriteString(", ")
	builder.WriteString("jurisdiction_id=")
	builder.WriteString(_m.JurisdictionID)
	builder.WriteString(", ")
	builder.WriteString("jurisdiction_code=")
	builder.WriteString(_m.JurisdictionCode)
	builder.WriteString(", ")
	builder.WriteString("jurisdiction_name=")
	builder.WriteString(_m.JurisdictionName)
	builder.WriteString(", ")
	builder.WriteString("chamber_id=")
	builder.WriteString(_m.ChamberID)
	builder.WriteString(", ")
	builder.WriteString("chamber_name=")
	builder.WriteString(_m.ChamberName)
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("case_number=")
	builder.WriteString(_m.CaseNumber)
	builder.WriteString(", ")
	builder.WriteString("register_number=")
	builder.WriteString(_m.RegisterNumber)
	builder.WriteString(", ")
	builder.WriteString("matter_code=")
	builder.WriteString(_m.MatterCode)
	builder.WriteString(", ")
	builder.WriteString("matter_label=")
	builder.WriteString(_m.MatterLabel)
	builder.WriteString(", ")
	builder.WriteString("procedure_code=")
	builder.WriteString(_m.ProcedureCode)
	builder.WriteString(", ")
	builder.WriteString("solution=")
	builder.WriteString(_m.Solution)
	builder.WriteString(", ")
	builder.WriteString("public=")
	builder.WriteString(fmt.Sprintf("%v", _m.Public))
	builder.WriteString(", ")
	builder.WriteString("debat_public=")
	builder.WriteString(fmt.Sprintf("%v", _m.DebatPublic))
	builder.WriteString(", ")
	builder.WriteString("selection=")
	builder.WriteString(fmt.Sprintf("%v", _m.Selection))
	builder.WriteString(", ")
	builder.WriteString("parties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parties))
	builder.WriteString(", ")
	builder.WriteString("composition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Composition))
	builder.WriteString(", ")
	builder.WriteString("occultation_additional_terms=")
	builder.WriteString(_m.OccultationAdditionalTerms)
	builder.WriteString(", ")
	builder.WriteString("occultation_categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccultationCategories))
	builder.WriteString(", ")
	builder.WriteString("occultation_motivation=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccultationMotivation))
	builder.WriteString(", ")
	builder.WriteString("label_status=")
	builder.WriteString(_m.LabelStatus)
	builder.WriteString(", ")
	builder.WriteString("publish_status=")
	builder.WriteString(_m.PublishStatus)
	builder.WriteString(", ")
	builder.WriteString("date_decision=")
	builder.WriteString(_m.DateDecision.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("date_creation=")
	builder.WriteString(_m.DateCreation.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Decisions is a parsable slice of Decision.
type Decisions []*Decision
