package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordSchemaURL = "schema://quiz-question.json"

// recordSchema checks the shape of a single question record. It checks
// types only: option counts and index ranges are content defects that the
// auditor reports, not load failures.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question":    map[string]any{"type": "string"},
		"options":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"correct":     map[string]any{"type": "integer"},
		"explanation": map[string]any{"type": "string"},
		"category":    map[string]any{"type": "string"},
		"difficulty":  map[string]any{"type": "string"},
		"conditionId": map[string]any{"type": "string"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go map literals with
		// typed slices, so round-trip through encoding/json.
		raw, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(recordSchemaURL)
	})
	return compiled, compileErr
}

// validateRecords validates each decoded record against the record schema.
func validateRecords(records []any) error {
	s, err := schema()
	if err != nil {
		return &LoadError{Index: -1, Err: fmt.Errorf("compile schema: %w", err)}
	}
	for i, rec := range records {
		if err := s.Validate(rec); err != nil {
			return &LoadError{Index: i, Err: fmt.Errorf("schema validation failed: %w", err)}
		}
	}
	return nil
}
