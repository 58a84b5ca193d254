package navigation

import (
	"testing"

	"github.com/jonathan/site-customizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want LinkKind
	}{
		{raw: "#sobre", want: KindAnchor},
		{raw: "contato", want: KindAnchor},
		{raw: "", want: KindAnchor},
		{raw: "https://blog.example.com", want: KindExternal},
		{raw: "HTTP://example.com", want: KindExternal},
		{raw: "mailto:ola@example.com", want: KindExternal},
		{raw: "tel:+5511999990000", want: KindExternal},
		{raw: "//cdn.example.com/x", want: KindExternal},
		{raw: "/privacidade", want: KindPath},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestBuildHeader(t *testing.T) {
	site := &types.SiteData{
		Identity: types.Identity{SiteName: "Consultório Luz", LogoURL: "/logo.svg"},
		Menu: types.Menu{
			Items: []types.Link{
				{Label: "Início", URL: "#hero"},
				{Label: "Sobre", URL: "sobre"},
				{Label: "Blog", URL: "https://blog.example.com"},
			},
			CTAButton: types.CTAButton{Label: "Agendar", URL: "contato", Highlight: true},
		},
	}

	header := BuildHeader(site)

	assert.Equal(t, Brand{Name: "Consultório Luz", LogoURL: "/logo.svg"}, header.Brand)
	require.Len(t, header.Items, 3)
	assert.Equal(t, Item{Label: "Início", Href: "#hero", Kind: KindAnchor}, header.Items[0])
	assert.Equal(t, "#sobre", header.Items[1].Href)
	assert.True(t, header.Items[2].External())
	assert.Equal(t, "https://blog.example.com", header.Items[2].Href)

	assert.Equal(t, Item{Label: "Agendar", Href: "#contato", Kind: KindAnchor, Highlight: true}, header.CTA)
}

func TestBuildHeader_EmptyMenu(t *testing.T) {
	header := BuildHeader(&types.SiteData{})
	assert.NotNil(t, header.Items)
	assert.Empty(t, header.Items)
}

func TestResolveLink(t *testing.T) {
	item := ResolveLink(types.Link{Label: "Privacidade", URL: "/privacidade"})
	assert.Equal(t, KindPath, item.Kind)
	assert.False(t, item.External())
}

func TestAnchorID(t *testing.T) {
	assert.Equal(t, "contato", AnchorID("#contato"))
	assert.Equal(t, "contato", AnchorID(" contato "))
}
