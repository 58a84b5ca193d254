package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/site-customizer/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("site.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("/etc/SITE.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("site.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("site"))
}

func TestLoadFile_JSON(t *testing.T) {
	site, err := LoadFile("../../testdata/valid/universal.json")
	require.NoError(t, err)
	assert.Equal(t, "Dra. Ana Carolina Silva", site.Identity.SiteName)
	assert.Len(t, site.Benefits, 4)
}

func TestLoadFile_YAMLMatchesJSON(t *testing.T) {
	fromYAML, err := LoadFile("../../testdata/valid/minimal.yaml")
	require.NoError(t, err)
	fromJSON, err := LoadFile("../../testdata/valid/minimal.json")
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func TestLoadFile_WrongVersion(t *testing.T) {
	_, err := LoadFile("../../testdata/invalid/wrong_version.json")
	require.Error(t, err)

	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "2.1", mismatch.Version)
	assert.Equal(t, "versao", mismatch.Path)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadFile_MissingSections(t *testing.T) {
	_, err := LoadFile("../../testdata/invalid/missing_secoes.json")

	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "3.0", mismatch.Version)
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "empty", data: "  \n", format: FormatJSON},
		{name: "broken json", data: "{ versao: ", format: FormatJSON},
		{name: "broken yaml", data: "versao: [3", format: FormatYAML},
		{name: "unknown format", data: "{}", format: Format("toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			var decodeErr *DecodeError
			assert.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestDecode_UnquotedYAMLVersion(t *testing.T) {
	data, err := os.ReadFile("../../testdata/valid/minimal.yaml")
	require.NoError(t, err)
	body := string(data[len(`versao: "3"`)+1:])

	for _, version := range []string{"3", "3.0", "3.10"} {
		t.Run(version, func(t *testing.T) {
			site, err := Decode([]byte("versao: "+version+"\n"+body), FormatYAML)
			require.NoError(t, err)
			assert.Equal(t, version, site.Version)
		})
	}

	_, err = Decode([]byte("versao: 2.1\n"+body), FormatYAML)
	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "2.1", mismatch.Version)
}

func TestDecode_NumericJSONVersionRejected(t *testing.T) {
	_, err := Decode([]byte(`{"versao": 3, "identidade": {}, "menu": {"botaoCTA": {}},
		"contato": {}, "redesSociais": {}, "secoes": {}}`), FormatJSON)

	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "3", mismatch.Version)
}
