package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../testdata"

func testSchema(t *testing.T) *Schema {
	t.Helper()
	schema, err := CompileFile(filepath.Join("testdata", "valid_schema.json"))
	require.NoError(t, err)
	return schema
}

func TestSchema_ValidateFile_Valid(t *testing.T) {
	schema := testSchema(t)
	assert.Equal(t, filepath.Join("testdata", "valid_schema.json"), schema.Name())
	assert.NoError(t, schema.ValidateFile(filepath.Join("testdata", "valid_json.json")))
}

func TestSchema_ValidateFile_MissingField(t *testing.T) {
	err := testSchema(t).ValidateFile(filepath.Join("testdata", "invalid_json.json"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, validationErr.Error(), "valid_schema.json")
}

func TestSchema_ValidateFile_WrongType(t *testing.T) {
	err := testSchema(t).ValidateFile(filepath.Join("testdata", "type_mismatch.json"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Contains(t, validationErr.Fields(), "rotulo")
}

func TestCompileFile_NonExistentSchema(t *testing.T) {
	_, err := CompileFile("testdata/nonexistent_schema.json")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "not found")
}

func TestCompile_MalformedSchema(t *testing.T) {
	_, err := Compile("broken", `{"type": 12}`)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken", loadErr.Path)
}

func TestSchema_ValidateFile_NonExistentJSON(t *testing.T) {
	err := testSchema(t).ValidateFile("testdata/nonexistent_json.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSchema_Validate_MalformedJSON(t *testing.T) {
	malformed := filepath.Join(t.TempDir(), "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{ invalid json }"), 0644))

	valErr := testSchema(t).ValidateFile(malformed)
	require.Error(t, valErr)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, valErr, &loadErr)
}

func TestValidateRawConfig(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantErr   bool
		wantField string
	}{
		{name: "full document", path: "valid/universal.json"},
		{name: "minimal document", path: "valid/minimal.json"},
		{name: "unvalidated colors pass structure check", path: "invalid/bad_color.json"},
		{name: "wrong version", path: "invalid/wrong_version.json", wantErr: true, wantField: "versao"},
		{name: "missing sections", path: "invalid/missing_secoes.json", wantErr: true, wantField: "(root)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(fixtures, tt.path))
			require.NoError(t, err)

			err = ValidateRawConfig(data)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields(), tt.wantField)
		})
	}
}

func TestValidateRawConfig_MissingHeroButton(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(fixtures, "valid", "minimal.json"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	hero := doc["secoes"].(map[string]any)["hero"].(map[string]any)
	delete(hero, "botaoSecundario")

	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	err = ValidateRawConfig(mutated)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "secoes.hero")
}

func TestValidateSiteData_RejectsUnknownField(t *testing.T) {
	err := ValidateSiteData([]byte(`{"version": "3", "extra": true}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 1)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["label"],
		"properties": {
			"label": {"type": "string"}
		}
	}`
	jsonContent := `{"label": "Agendar"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["label"],
		"properties": {
			"label": {"type": "string"}
		}
	}`
	jsonContent := `{"url": "#contato"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "versao", Message: "does not match pattern"},
			{Field: "secoes", Message: "is required"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "versao")
	assert.Contains(t, errorMsg, "secoes")
	assert.Equal(t, []string{"versao", "secoes"}, err.Fields())
}

func TestValidateJSONString_NestedField(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["menu"],
		"properties": {
			"menu": {
				"type": "object",
				"required": ["botaoCTA"],
				"properties": {
					"botaoCTA": {"type": "object"}
				}
			}
		}
	}`

	jsonContent := `{"menu": {}}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Fields(), "menu")
}
