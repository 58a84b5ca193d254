// Package schemas provides JSON Schema validation for the raw site configuration and the adapted site data.
package schemas

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	schemadocs "github.com/jonathan/site-customizer/schemas"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or compiling a schema, or reading a document
// the schema could not be applied to
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
	if ve.Schema != "" {
		sb.WriteString(fmt.Sprintf("validation against %s failed:\n", ve.Schema))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Fields returns the failing field paths in report order
func (ve *ValidationError) Fields() []string {
	fields := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		fields = append(fields, err.Field)
	}
	return fields
}

// Schema is a compiled JSON Schema. It is safe for concurrent use.
type Schema struct {
	name     string
	compiled *gojsonschema.Schema
}

// Compile parses and compiles schema source. name only labels errors.
func Compile(name, source string) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "failed to compile schema", Cause: err}
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// CompileFile reads and compiles a schema file
func CompileFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "schema file not found", Cause: err}
	}
	return Compile(path, string(data))
}

// Name returns the label the schema was compiled with
func (s *Schema) Name() string {
	return s.name
}

// Validate checks a JSON document. Malformed JSON is a *SchemaLoadError; a document that
// parses but does not conform is a *ValidationError.
func (s *Schema) Validate(data []byte) error {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaLoadError{
			Path:    s.name,
			Message: "document could not be read for validation",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: s.name,
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

// ValidateFile reads a JSON document from disk and validates it
func (s *Schema) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("JSON file not found: %w", err)
	}
	return s.Validate(data)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schema, err := Compile("(string schema)", schemaContent)
	if err != nil {
		return err
	}
	return schema.Validate([]byte(jsonContent))
}

// The embedded schemas compile once per process
var (
	universalSchema = sync.OnceValues(func() (*Schema, error) {
		return Compile("universal.schema.json", schemadocs.Universal)
	})
	siteSchema = sync.OnceValues(func() (*Schema, error) {
		return Compile("site.schema.json", schemadocs.Site)
	})
)

// ValidateRawConfig validates a raw site configuration document (JSON bytes) against the
// embedded universal schema.
func ValidateRawConfig(data []byte) error {
	schema, err := universalSchema()
	if err != nil {
		return err
	}
	return schema.Validate(data)
}

// ValidateSiteData validates adapted site data (JSON bytes) against the embedded site schema.
func ValidateSiteData(data []byte) error {
	schema, err := siteSchema()
	if err != nil {
		return err
	}
	return schema.Validate(data)
}
