// Package schema provides JSON schema generation utilities for the SDK.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/douglasmun/factmod/domain/errors"
)

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the invopop/jsonschema library to reflect on the struct and
// generate a standard JSON Schema.
func GenerateSchema(v any) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	s := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, &errors.SchemaError{Err: err}
	}

	return jsonBytes, nil
}
