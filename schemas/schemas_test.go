package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/site-customizer/internal/schemas"
	schemadocs "github.com/jonathan/site-customizer/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"universal.schema.json",
	"site.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			assert.Contains(t, schemaObj, "required")
		})
	}
}

func TestEmbeddedSchemas_MatchFiles(t *testing.T) {
	universal, err := os.ReadFile("universal.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(universal), schemadocs.Universal)

	site, err := os.ReadFile("site.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(site), schemadocs.Site)
}

func TestUniversalSchema_DefinitionsResolvable(t *testing.T) {
	doc := `{
		"versao": "3.1",
		"identidade": {},
		"menu": {"itens": [{"rotulo": "Sobre", "url": "#sobre"}], "botaoCTA": {}},
		"contato": {},
		"redesSociais": {},
		"secoes": {
			"hero": {"botaoPrincipal": {}, "botaoSecundario": {}},
			"beneficios": {}, "servicos": {}, "sobre": {}, "depoimentos": {},
			"faq": {}, "cta": {}, "rodape": {"links": []}
		}
	}`
	assert.NoError(t, schemas.ValidateJSONString(schemadocs.Universal, doc))
}

func TestUniversalSchema_RejectsWrongMajorVersion(t *testing.T) {
	for _, version := range []string{"2", "2.9", "30", "v3", ""} {
		t.Run(version, func(t *testing.T) {
			doc := `{"versao": "` + version + `", "identidade": {}, "menu": {"botaoCTA": {}},
				"contato": {}, "redesSociais": {}, "secoes": {}}`
			err := schemas.ValidateJSONString(schemadocs.Universal, doc)
			require.Error(t, err)
		})
	}
}
