package rendering

import (
	"testing"

	"github.com/jonathan/site-customizer/internal/theme"
	"github.com/jonathan/site-customizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySections_RenderedPage(t *testing.T) {
	site, html := renderFixture(t, "../../testdata/valid/universal.json")

	v, err := VerifySections(html, site.Sections)
	require.NoError(t, err)
	assert.True(t, v.OK())
	assert.NoError(t, v.Err())
	assert.Empty(t, v.DanglingAnchors)
}

func TestVerifySections_Mismatch(t *testing.T) {
	html := `<main>
		<section data-section="faq" id="faq"></section>
		<section data-section="hero" id="inicio"></section>
		<section data-section="services" id="servicos"></section>
	</main>`
	sections := types.Sections{
		Hero:  types.SectionState{Active: true},
		About: types.SectionState{Active: true},
		FAQ:   types.SectionState{Active: true},
	}

	v, err := VerifySections(html, sections)
	require.NoError(t, err)
	assert.False(t, v.OK())
	assert.Equal(t, []types.SectionName{types.SectionAbout}, v.Missing)
	assert.Equal(t, []types.SectionName{types.SectionServices}, v.Unexpected)

	err = v.Err()
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, err.Error(), "about")
}

func TestVerifySections_OutOfOrder(t *testing.T) {
	html := `<section data-section="faq"></section><section data-section="hero"></section>`
	sections := types.Sections{Hero: types.SectionState{Active: true}, FAQ: types.SectionState{Active: true}}

	v, err := VerifySections(html, sections)
	require.NoError(t, err)
	assert.True(t, v.OutOfOrder)
	assert.Contains(t, v.Err().Error(), "out of order")
}

func TestVerifySections_DanglingAnchorsDoNotFail(t *testing.T) {
	site := loadSite(t, "../../testdata/valid/minimal.json")
	html, err := RenderPage(BuildPageData(site, theme.DefaultTokens(), PageOptions{}))
	require.NoError(t, err)

	v, err := VerifySections(html, site.Sections)
	require.NoError(t, err)
	assert.True(t, v.OK())
	// the header CTA points at the inactive contact section
	assert.Equal(t, []string{"#contato"}, v.DanglingAnchors)
}

func TestRenderThemeCSS(t *testing.T) {
	css := RenderThemeCSS(theme.DefaultTokens())
	assert.Contains(t, css, ":root {\n")
	assert.Contains(t, css, "--muted-foreground: 0 0% 40%;")
	assert.NotContains(t, css, ".dark")

	cfg := types.DefaultThemeConfig()
	cfg.DarkMode = true
	tokens, err := theme.Derive(cfg)
	require.NoError(t, err)

	css = RenderThemeCSS(tokens)
	assert.Contains(t, css, ".dark {\n")
	assert.Contains(t, css, "color-scheme: dark")
}
