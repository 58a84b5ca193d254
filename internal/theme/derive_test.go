package theme

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/site-customizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_DefaultPalette(t *testing.T) {
	tokens, err := Derive(types.ThemeConfig{
		Primary:    "#e3c9c9",
		Secondary:  "#f5e5e5",
		Background: "#f7f4ee",
		Text:       "#1a1a1a",
		DarkMode:   false,
	})
	require.NoError(t, err)

	want := map[string]string{
		TokenPrimary:                  "0 32% 84%",
		TokenPrimaryForeground:        "0 0% 10%",
		TokenSecondary:                "0 44% 93%",
		TokenSecondaryForeground:      "0 0% 10%",
		TokenBackground:               "40 36% 95%",
		TokenForeground:               "0 0% 10%",
		TokenCard:                     "40 36% 95%",
		TokenCardForeground:           "0 0% 10%",
		TokenPopover:                  "40 36% 95%",
		TokenPopoverForeground:        "0 0% 10%",
		TokenAccent:                   "0 54% 95%",
		TokenAccentForeground:         "0 0% 10%",
		TokenMuted:                    "0 10% 90%",
		TokenMutedForeground:          "0 0% 40%",
		TokenBorder:                   "0 44% 93%",
		TokenInput:                    "0 10% 90%",
		TokenRing:                     "0 32% 84%",
		TokenSidebarBackground:        "40 36% 95%",
		TokenSidebarForeground:        "0 0% 10%",
		TokenSidebarPrimary:           "0 32% 84%",
		TokenSidebarPrimaryForeground: "0 0% 10%",
		TokenSidebarAccent:            "0 44% 93%",
		TokenSidebarAccentForeground:  "0 0% 10%",
		TokenSidebarBorder:            "0 44% 93%",
		TokenSidebarRing:              "0 32% 84%",
		TokenRoseGold:                 "0 32% 84%",
		TokenRoseDelicate:             "0 44% 93%",
		TokenChampagneSoft:            "0 54% 95%",
		TokenBeigeCalm:                "40 36% 95%",
		TokenGlassForeground:          "0 0% 10%",
		TokenGlassMutedForeground:     "0 0% 35%",
		TokenGlassPrimary:             "0 32% 84%",
	}

	assert.Equal(t, want, tokens.Map())
	assert.Equal(t, len(TokenNames), tokens.Len())
	assert.False(t, tokens.DarkMode())
}

func TestDerive_DarkBackground(t *testing.T) {
	tokens, err := Derive(types.ThemeConfig{
		Primary:    "#1e3a8a",
		Secondary:  "#334155",
		Background: "#0f172a",
		Text:       "#f8fafc",
		DarkMode:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "0 0% 65%", tokens.Value(TokenMutedForeground))
	assert.Equal(t, "0 0% 98%", tokens.Value(TokenPrimaryForeground))
	assert.Equal(t, "222 47% 11%", tokens.Value(TokenBackground))
	assert.True(t, tokens.DarkMode())
}

func TestDerive_DarkModeIsConfigDriven(t *testing.T) {
	cfg := types.DefaultThemeConfig()
	cfg.DarkMode = true

	tokens, err := Derive(cfg)
	require.NoError(t, err)
	assert.True(t, tokens.DarkMode())

	light, err := Derive(types.DefaultThemeConfig())
	require.NoError(t, err)
	assert.Equal(t, light.Map(), tokens.Map())
}

func TestDerive_Pure(t *testing.T) {
	cfg := types.DefaultThemeConfig()
	first, err := Derive(cfg)
	require.NoError(t, err)
	second, err := Derive(cfg)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Entries(), second.Entries())
}

func TestDerive_InvalidColor(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *types.ThemeConfig)
		role   string
	}{
		{name: "primary", mutate: func(c *types.ThemeConfig) { c.Primary = "rosa" }, role: "primary"},
		{name: "secondary", mutate: func(c *types.ThemeConfig) { c.Secondary = "#12" }, role: "secondary"},
		{name: "background", mutate: func(c *types.ThemeConfig) { c.Background = "" }, role: "background"},
		{name: "text", mutate: func(c *types.ThemeConfig) { c.Text = "#zzzzzz" }, role: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.DefaultThemeConfig()
			tt.mutate(&cfg)

			tokens, err := Derive(cfg)
			require.Error(t, err)
			assert.Nil(t, tokens)

			var baseErr *BaseColorError
			require.ErrorAs(t, err, &baseErr)
			assert.Equal(t, tt.role, baseErr.Role)

			var colorErr *InvalidColorFormatError
			assert.ErrorAs(t, err, &colorErr)
		})
	}
}

func TestDeriveWithFallback(t *testing.T) {
	cfg := types.DefaultThemeConfig()
	cfg.Primary = "not-a-color"

	tokens, err := DeriveWithFallback(cfg)
	require.Error(t, err)
	require.NotNil(t, tokens)
	assert.True(t, tokens.Equal(DefaultTokens()))

	cfg = types.DefaultThemeConfig()
	cfg.Primary = "#1e3a8a"
	tokens, err = DeriveWithFallback(cfg)
	require.NoError(t, err)
	assert.Equal(t, "224 64% 33%", tokens.Value(TokenPrimary))
}

func TestTokens_GetUnknown(t *testing.T) {
	tokens := DefaultTokens()

	_, ok := tokens.Get("chart-1")
	assert.False(t, ok)
	assert.Empty(t, tokens.Value("chart-1"))
}

func TestTokens_CSS(t *testing.T) {
	css := DefaultTokens().CSS(":root")

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "  --primary: 0 32% 84%;\n")
	assert.Contains(t, css, "  --glass-muted-foreground: 0 0% 35%;\n")
	assert.Equal(t, len(TokenNames), strings.Count(css, "--"))
}

func TestTokens_JSONRoundTrip(t *testing.T) {
	cfg := types.DefaultThemeConfig()
	cfg.DarkMode = true
	tokens, err := Derive(cfg)
	require.NoError(t, err)

	data, err := json.Marshal(tokens)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"darkMode":true`)
	assert.Contains(t, string(data), `"beige-calm":"40 36% 95%"`)

	var decoded Tokens
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, tokens.Equal(&decoded))
	assert.Equal(t, tokens.Entries(), decoded.Entries())
}

func TestTokens_EntriesIsCopy(t *testing.T) {
	tokens := DefaultTokens()
	entries := tokens.Entries()
	entries[0].Value = HSL{}

	assert.Equal(t, "0 32% 84%", tokens.Value(TokenPrimary))
}
