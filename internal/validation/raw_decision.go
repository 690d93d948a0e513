// Package validation checks raw submissions before they enter the pipeline.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/entity"
)

// BuildRawDecisionSchema returns the JSON-Schema (draft 2020-12 subset) a raw
// decision object must satisfy before mapping.
func BuildRawDecisionSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"metadonnees"},
		"properties": map[string]any{
			"texteDecisionIntegre": map[string]any{"type": "string"},
			"metadonnees": map[string]any{
				"type":     "object",
				"required": []string{"idJuridiction", "idGroupement", "numeroDossier", "dateDecision"},
				"properties": map[string]any{
					"idJuridiction": map[string]any{"type": "string", "minLength": 1},
					"idGroupement":  map[string]any{"type": "string", "minLength": 1},
					"numeroDossier": map[string]any{"type": "string", "minLength": 1},
					"dateDecision":  map[string]any{"type": "string", "pattern": `^\d{8}$`},
				},
			},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseRawDecision validates and decodes a raw-store object. All failures are
// validation-class: the item is skipped, not retried.
func ParseRawDecision(data []byte) (*entity.RawDecision, error) {
	if err := ValidateJSONAgainstSchema(BuildRawDecisionSchema(), data); err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	var raw entity.RawDecision
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	if _, err := entity.ParseDecisionDate(raw.Metadata.DecisionDate); err != nil {
		return nil, common.WrapError(common.ErrValidation, fmt.Sprintf("dateDecision %q is not a calendar date", raw.Metadata.DecisionDate))
	}
	return &raw, nil
}
