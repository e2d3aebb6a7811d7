package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/request-ocr/constants"
)

// BuildUsageJSONSchema returns the JSON schema a normalized usage record must satisfy.
func BuildUsageJSONSchema() map[string]any {
	props := map[string]any{
		"company":         nullableString(nil),
		"country":         nullableString(nil),
		"service_type":    nullableEnum(string(constants.SpeedExpress), string(constants.SpeedNormal)),
		"date":            nullableString(map[string]any{"pattern": `^\d{2}/\d{2}/\d{4}$`}),
		"entered_ref_no":  nullableString(map[string]any{"pattern": `^\d{10}$`}),
		"telephone":       map[string]any{"type": "string", "minLength": 1},
		"company_reg_num": nullableString(nil),
		"address":         nullableString(nil),
		"comments":        nullableString(nil),
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"telephone"},
	}
}

func nullableString(extra map[string]any) map[string]any {
	p := map[string]any{"type": []string{"string", "null"}}
	for k, v := range extra {
		p[k] = v
	}
	return p
}

func nullableEnum(values ...string) map[string]any {
	enum := make([]any, 0, len(values)+1)
	for _, v := range values {
		enum = append(enum, v)
	}
	enum = append(enum, nil)
	return map[string]any{"enum": enum}
}

// compileSchema compiles schemaMap once so records can be validated repeatedly.
func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("usage.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("usage.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// validateJSON checks data against a compiled schema.
func validateJSON(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
