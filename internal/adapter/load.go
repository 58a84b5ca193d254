package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/site-customizer/internal/schemas"
	"github.com/jonathan/site-customizer/internal/types"
)

// Format identifies the encoding of a raw configuration document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from the file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads, validates and adapts the configuration document at path
func LoadFile(path string) (*types.SiteData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return Decode(data, FormatFromPath(path))
}

// Decode parses a raw document, checks it against the universal schema, then adapts it.
func Decode(data []byte, format Format) (*types.SiteData, error) {
	raw, err := DecodeRaw(data, format)
	if err != nil {
		return nil, err
	}
	return Adapt(raw)
}

// DecodeRaw parses and schema-checks a raw document without adapting it
func DecodeRaw(data []byte, format Format) (*types.RawConfig, error) {
	jsonData, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateRawConfig(jsonData); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &SchemaMismatchError{
				Version: peekVersion(jsonData),
				Path:    firstField(validationErr),
				Message: "document does not match the universal schema",
				Cause:   err,
			}
		}
		return nil, err
	}

	var raw types.RawConfig
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, &DecodeError{Message: "failed to unmarshal configuration", Cause: err}
	}
	return &raw, nil
}

// toJSON normalizes the input to JSON bytes so a single schema covers both formats
func toJSON(data []byte, format Format) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &DecodeError{Message: "document is empty"}
	}

	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, &DecodeError{Message: "document is not valid JSON"}
		}
		return data, nil
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, &DecodeError{Message: "document is not valid YAML", Cause: err}
		}
		versionAsString(&root)
		var doc any
		if err := root.Decode(&doc); err != nil {
			return nil, &DecodeError{Message: "document is not valid YAML", Cause: err}
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, &DecodeError{Message: "failed to convert YAML to JSON", Cause: err}
		}
		return out, nil
	default:
		return nil, &DecodeError{Message: fmt.Sprintf("unsupported format %q", format)}
	}
}

// versionAsString retags an unquoted numeric versao as a string so `versao: 3.0` keeps its
// literal text instead of decoding to a float
func versionAsString(root *yaml.Node) {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if key.Value != "versao" || value.Kind != yaml.ScalarNode {
			continue
		}
		if value.Tag == "!!int" || value.Tag == "!!float" {
			value.Tag = "!!str"
			value.Style = yaml.DoubleQuotedStyle
		}
		return
	}
}

func peekVersion(jsonData []byte) string {
	var head struct {
		Versao any `json:"versao"`
	}
	if err := json.Unmarshal(jsonData, &head); err != nil || head.Versao == nil {
		return ""
	}
	if s, ok := head.Versao.(string); ok {
		return s
	}
	return fmt.Sprint(head.Versao)
}

func firstField(err *schemas.ValidationError) string {
	if len(err.Errors) == 0 {
		return ""
	}
	return err.Errors[0].Field
}
