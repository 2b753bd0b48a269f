package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const stateSchemaURL = "schema://game-state.json"

func counter() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}

func operatorList() map[string]any {
	return map[string]any{
		"type": []any{"array", "null"},
		"items": map[string]any{
			"type": "string",
			"enum": []any{"add", "subtract", "multiply", "divide"},
		},
	}
}

// stateSchema describes a persisted GameState. Fields are optional so that
// records written by older versions still load.
var stateSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"currentLevel":             map[string]any{"type": "integer", "minimum": 1},
		"score":                    counter(),
		"lifetimeScore":            counter(),
		"questionsAnswered":        counter(),
		"correctAnswers":           counter(),
		"sessionQuestionsAnswered": counter(),
		"sessionCorrectAnswers":    counter(),
		"averageResponseTime":      map[string]any{"type": "number", "minimum": 0},
		"currentStreak":            counter(),
		"maxStreak":                counter(),
		"uniqueOperatorsUsed":      operatorList(),
		"stars":                    counter(),
		"lastQuestionTypes":        operatorList(),
	},
	"required": []any{"currentLevel"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getStateSchema compiles the state schema once.
func getStateSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not a Go map
		// with typed slices, so round-trip through encoding/json.
		defBytes, err := json.Marshal(stateSchema)
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
		if err := c.AddResource(stateSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(stateSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateState checks raw JSON against the state schema.
func validateState(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getStateSchema()
	if err != nil {
		return fmt.Errorf("compile state schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
