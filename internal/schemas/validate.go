// Package schemas provides JSON Schema validation for resume documents and protocol frames.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	schemafiles "github.com/jonathan/resume-chat/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// resumeSchema is compiled once; the embedded schema never changes at runtime
var resumeSchema = mustCompile("resume.schema.json", schemafiles.Resume)

var answerSchema = mustCompile("answer.schema.json", schemafiles.Answer)

func mustCompile(name, content string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		panic(fmt.Sprintf("embedded schema %s does not compile: %v", name, err))
	}
	return schema
}

// ValidateResume validates a JSON resume document against the embedded resume schema
func ValidateResume(data []byte) error {
	return validateWith(resumeSchema, "resume.schema.json", gojsonschema.NewBytesLoader(data))
}

// ValidateAnswer validates an outbound answer frame against the embedded answer schema
func ValidateAnswer(data []byte) error {
	return validateWith(answerSchema, "answer.schema.json", gojsonschema.NewBytesLoader(data))
}

// ValidateResumeFile validates a JSON resume file against the embedded resume schema
func ValidateResumeFile(jsonPath string) error {
	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	data, err := os.ReadFile(jsonAbsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
		}
		return fmt.Errorf("failed to read JSON file %s: %w", jsonAbsPath, err)
	}

	return ValidateResume(data)
}

func validateWith(schema *gojsonschema.Schema, name string, document gojsonschema.JSONLoader) error {
	result, err := schema.Validate(document)
	if err != nil {
		// The schema is precompiled, so this is a document that is not JSON at all
		return &SchemaLoadError{
			Path:    name,
			Message: "document could not be loaded",
			Cause:   err,
		}
	}

	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
