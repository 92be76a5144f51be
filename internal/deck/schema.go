package deck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// deckSchema describes the structural shape of a deck file: an array of
// checkpoint objects. The one-correct-answer invariant is semantic and
// checked separately in Parse.
var deckSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"time": map[string]any{
				"type":    "number",
				"minimum": 0,
			},
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"answers": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":    map[string]any{"type": "string", "minLength": 1},
						"correct": map[string]any{"type": "boolean"},
					},
					"required":             []any{"text", "correct"},
					"additionalProperties": false,
				},
			},
			"randomize": map[string]any{"type": "boolean"},
		},
		"required":             []any{"time", "question", "answers"},
		"additionalProperties": false,
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSchema checks raw deck JSON against the deck schema.
func validateSchema(raw []byte) error {
	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile deck schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("deck schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles the deck schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(deckSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://deck.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
