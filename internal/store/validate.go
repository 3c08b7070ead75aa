package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// snapshotSchema constrains stored snapshot documents before they are
// unmarshalled, so a truncated or hand-edited row is rejected as
// corrupt instead of silently restoring nonsense state.
const snapshotSchema = `{
	"type": "object",
	"required": ["bkt_params", "elo_k", "total_attempts", "users", "items", "history", "difficulty"],
	"properties": {
		"saved_at": {"type": "string"},
		"elo_k": {"type": "number", "exclusiveMinimum": 0},
		"total_attempts": {"type": "integer", "minimum": 0},
		"bkt_params": {
			"type": "object",
			"required": ["learn", "slip", "guess", "forget"],
			"properties": {
				"learn": {"type": "number", "minimum": 0, "maximum": 1},
				"slip": {"type": "number", "minimum": 0, "maximum": 1},
				"guess": {"type": "number", "minimum": 0, "maximum": 1},
				"forget": {"type": "number", "minimum": 0, "maximum": 1}
			}
		},
		"users": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"required": ["user_id", "ability", "ability_stderr", "rating"],
				"properties": {
					"ability_stderr": {"type": "number", "minimum": 0},
					"rating": {"type": "number", "minimum": 800, "maximum": 2400}
				}
			}
		},
		"items": {"type": "object"},
		"history": {"type": "object"},
		"difficulty": {"type": "object"}
	}
}`

var (
	compiledSchemaOnce sync.Once
	compiledSchema     *jsonschema.Schema
	compileErr         error
)

// validateSnapshotJSON checks a raw snapshot document against the
// embedded schema.
func validateSnapshotJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiledSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(snapshotSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://snapshot.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://snapshot.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile snapshot schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
