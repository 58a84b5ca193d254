// Package content fills presentation-time fallbacks into adapted site data in one place.
package content

import (
	"fmt"
	"time"

	"github.com/jonathan/site-customizer/internal/types"
)

// Defaults holds every fallback value applied after adaptation
type Defaults struct {
	BrandTitle       string
	BrandDescription string
	HeaderCTA        types.CTAButton
	HeroImage        string
	Theme            types.ThemeConfig
	Year             int
}

// DefaultDefaults returns the stock fallbacks, stamped with the current year
func DefaultDefaults() Defaults {
	return Defaults{
		BrandTitle:       "Dra. Ana Carolina Silva",
		BrandDescription: "Psicologia Feminina com acolhimento, empatia e transformação genuína.",
		HeaderCTA:        types.CTAButton{Label: "Agendar", URL: "#contato", Highlight: true},
		HeroImage:        "/images/hero-background.jpg",
		Theme:            types.DefaultThemeConfig(),
		Year:             time.Now().Year(),
	}
}

// Copyright formats the fallback copyright line for a site name
func Copyright(year int, siteName string) string {
	return fmt.Sprintf("© %d %s - Todos os direitos reservados", year, siteName)
}

// MergeDefaults returns a fully populated copy of site. Only empty fields are filled;
// the input is never modified.
func MergeDefaults(site *types.SiteData, d Defaults) *types.SiteData {
	if site == nil {
		return nil
	}
	out := site.Clone()

	if out.Identity.SiteName == "" {
		out.Identity.SiteName = d.BrandTitle
	}
	if out.Identity.Description == "" {
		out.Identity.Description = d.BrandDescription
	}

	if out.Menu.CTAButton.Label == "" {
		out.Menu.CTAButton.Label = d.HeaderCTA.Label
		out.Menu.CTAButton.Highlight = out.Menu.CTAButton.Highlight || d.HeaderCTA.Highlight
	}
	if out.Menu.CTAButton.URL == "" {
		out.Menu.CTAButton.URL = d.HeaderCTA.URL
	}

	if out.Hero.Image == "" {
		out.Hero.Image = d.HeroImage
	}

	if out.Footer.BrandDescription == "" {
		out.Footer.BrandDescription = out.Identity.Description
	}
	if out.Footer.Copyright == "" {
		out.Footer.Copyright = Copyright(d.Year, out.Identity.SiteName)
	}
	if len(out.Footer.Links) == 0 {
		out.Footer.Links = append([]types.Link{}, out.Menu.Items...)
	}

	out.Settings.Theme = mergeTheme(out.Settings.Theme, d.Theme)

	return out
}

// mergeTheme fills each blank color from the fallback palette. DarkMode and PaletteID
// come from the document whenever it has a theme block. Present but malformed colors are
// left for the deriver to reject.
func mergeTheme(theme *types.ThemeConfig, fallback types.ThemeConfig) *types.ThemeConfig {
	if theme == nil {
		t := fallback
		return &t
	}
	if theme.Primary == "" {
		theme.Primary = fallback.Primary
	}
	if theme.Secondary == "" {
		theme.Secondary = fallback.Secondary
	}
	if theme.Background == "" {
		theme.Background = fallback.Background
	}
	if theme.Text == "" {
		theme.Text = fallback.Text
	}
	return theme
}
