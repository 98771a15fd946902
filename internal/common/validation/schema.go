// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type Result struct {
	Valid  bool
	Errors []FieldError
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks a decoded JSON document against a Go-map JSON schema.
func Validate(document map[string]interface{}, schema map[string]interface{}) (*Result, error) {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return &Result{Valid: true}, nil
	}

	out := &Result{Valid: false}
	for _, resErr := range result.Errors() {
		out.Errors = append(out.Errors, FieldError{
			Field:   resErr.Field(),
			Message: resErr.Description(),
		})
	}
	return out, nil
}

// Summary renders the error list as one human-readable line.
func (r *Result) Summary() string {
	if r.Valid || len(r.Errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}
