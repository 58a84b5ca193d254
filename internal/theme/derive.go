package theme

import (
	"github.com/jonathan/site-customizer/internal/types"
)

var (
	glassForeground      = HSL{H: 0, S: 0, L: 10}
	glassMutedForeground = HSL{H: 0, S: 0, L: 35}
)

// Derive computes every palette token from the four base colors. DarkMode is carried
// verbatim from the config and is never inferred from the colors.
func Derive(cfg types.ThemeConfig) (*Tokens, error) {
	primary, err := DeriveVariations(cfg.Primary)
	if err != nil {
		return nil, &BaseColorError{Role: "primary", Cause: err}
	}
	secondary, err := DeriveVariations(cfg.Secondary)
	if err != nil {
		return nil, &BaseColorError{Role: "secondary", Cause: err}
	}
	background, err := ColorToHSL(cfg.Background)
	if err != nil {
		return nil, &BaseColorError{Role: "background", Cause: err}
	}
	foreground, err := ColorToHSL(cfg.Text)
	if err != nil {
		return nil, &BaseColorError{Role: "text", Cause: err}
	}

	// parse errors are impossible past this point
	primaryFg, _ := ContrastingForeground(cfg.Primary)
	secondaryFg, _ := ContrastingForeground(cfg.Secondary)

	mutedFg := HSL{H: 0, S: 0, L: 40}
	if background.L < 50 {
		mutedFg.L = 65
	}

	values := map[string]HSL{
		TokenPrimary:                  primary.Base,
		TokenPrimaryForeground:        primaryFg,
		TokenSecondary:                secondary.Base,
		TokenSecondaryForeground:      secondaryFg,
		TokenBackground:               background,
		TokenForeground:               foreground,
		TokenCard:                     background,
		TokenCardForeground:           foreground,
		TokenPopover:                  background,
		TokenPopoverForeground:        foreground,
		TokenAccent:                   secondary.Lighter,
		TokenAccentForeground:         foreground,
		TokenMuted:                    primary.Muted,
		TokenMutedForeground:          mutedFg,
		TokenBorder:                   secondary.Base,
		TokenInput:                    primary.Muted,
		TokenRing:                     primary.Base,
		TokenSidebarBackground:        background,
		TokenSidebarForeground:        foreground,
		TokenSidebarPrimary:           primary.Base,
		TokenSidebarPrimaryForeground: primaryFg,
		TokenSidebarAccent:            secondary.Base,
		TokenSidebarAccentForeground:  secondaryFg,
		TokenSidebarBorder:            secondary.Base,
		TokenSidebarRing:              primary.Base,
		TokenRoseGold:                 primary.Base,
		TokenRoseDelicate:             secondary.Base,
		TokenChampagneSoft:            secondary.Lighter,
		TokenBeigeCalm:                background,
		TokenGlassForeground:          glassForeground,
		TokenGlassMutedForeground:     glassMutedForeground,
		TokenGlassPrimary:             primary.Base,
	}

	entries := make([]Token, len(TokenNames))
	for i, name := range TokenNames {
		entries[i] = Token{Name: name, Value: values[name]}
	}
	return newTokens(entries, cfg.DarkMode), nil
}

// DefaultTokens returns the palette derived from types.DefaultThemeConfig
func DefaultTokens() *Tokens {
	tokens, err := Derive(types.DefaultThemeConfig())
	if err != nil {
		panic("theme: default palette does not derive: " + err.Error())
	}
	return tokens
}

// DeriveWithFallback derives the palette and falls back to DefaultTokens when a base color is
// malformed. The derivation error is returned alongside the fallback so callers can report it.
func DeriveWithFallback(cfg types.ThemeConfig) (*Tokens, error) {
	tokens, err := Derive(cfg)
	if err != nil {
		return DefaultTokens(), err
	}
	return tokens, nil
}
