package layout

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mespinosa/fuelcap/constants"
)

// buildLayoutSchema returns the JSON-Schema (draft 2020-12 subset) for the
// layout file: one region object per invoice field, all fields required,
// nothing else allowed.
func buildLayoutSchema() map[string]any {
	region := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"x1": coordProp(),
			"y1": coordProp(),
			"x2": coordProp(),
			"y2": coordProp(),
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}

	props := map[string]any{}
	required := make([]string, 0, len(constants.Fields))
	for _, f := range constants.Fields {
		props[string(f)] = region
		required = append(required, string(f))
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func coordProp() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}

// validateLayoutJSON validates "data" against the layout schema.
func validateLayoutJSON(data []byte) error {
	b, err := json.Marshal(buildLayoutSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("layout.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("layout.schema.json")
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
