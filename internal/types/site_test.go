package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSite() *SiteData {
	theme := DefaultThemeConfig()
	return &SiteData{
		Version:  "3.0",
		Identity: Identity{SiteName: "Consultório", Keywords: []string{"terapia"}},
		Menu: Menu{
			Items:     []Link{{Label: "Sobre", URL: "#sobre"}},
			CTAButton: CTAButton{Label: "Agendar", URL: "#contato", Highlight: true},
		},
		Services:     []Service{{Title: "Individual", Topics: []string{"Ansiedade"}}},
		About:        About{Highlights: []string{"CRP"}},
		Testimonials: []Testimonial{{Name: "M.", Text: "Ótimo"}},
		FAQ:          []FAQEntry{{Question: "?", Answer: "!"}},
		Footer:       Footer{Links: []Link{{Label: "Contato", URL: "#contato"}}},
		Sections:     Sections{Hero: SectionState{Active: true}, FAQ: SectionState{Active: true}},
		Settings:     Settings{Theme: &theme},
	}
}

func TestSiteData_CloneIsDeep(t *testing.T) {
	original := sampleSite()
	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Identity.Keywords[0] = "changed"
	clone.Menu.Items[0].Label = "changed"
	clone.Services[0].Topics[0] = "changed"
	clone.About.Highlights[0] = "changed"
	clone.Testimonials[0].Name = "changed"
	clone.FAQ[0].Question = "changed"
	clone.Footer.Links[0].URL = "changed"
	clone.Settings.Theme.Primary = "#000000"

	assert.Equal(t, "terapia", original.Identity.Keywords[0])
	assert.Equal(t, "Sobre", original.Menu.Items[0].Label)
	assert.Equal(t, "Ansiedade", original.Services[0].Topics[0])
	assert.Equal(t, "CRP", original.About.Highlights[0])
	assert.Equal(t, "M.", original.Testimonials[0].Name)
	assert.Equal(t, "?", original.FAQ[0].Question)
	assert.Equal(t, "#contato", original.Footer.Links[0].URL)
	assert.Equal(t, "#e3c9c9", original.Settings.Theme.Primary)
}

func TestSiteData_CloneNil(t *testing.T) {
	var site *SiteData
	assert.Nil(t, site.Clone())
}

func TestSiteData_JSONKeys(t *testing.T) {
	jsonBytes, err := json.Marshal(sampleSite())
	require.NoError(t, err)

	for _, key := range []string{`"socialLinks"`, `"ctaButton"`, `"secondaryButton"`, `"sections"`, `"darkMode"`} {
		assert.Contains(t, string(jsonBytes), key)
	}
}

func TestSections_Active(t *testing.T) {
	sections := Sections{
		Hero:         SectionState{Active: true},
		Services:     SectionState{Active: true},
		Testimonials: SectionState{Active: false},
		FAQ:          SectionState{Active: true},
	}

	assert.True(t, sections.Active(SectionHero))
	assert.False(t, sections.Active(SectionTestimonials))
	assert.False(t, sections.Active(SectionName("blog")))
	assert.Equal(t, []SectionName{SectionHero, SectionServices, SectionFAQ}, sections.ActiveNames())
}

func TestSections_ActiveNamesEmpty(t *testing.T) {
	assert.Empty(t, Sections{}.ActiveNames())
}

func TestThemeConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ThemeConfig)
		wantErr bool
	}{
		{name: "default", mutate: func(c *ThemeConfig) {}},
		{name: "short hex", mutate: func(c *ThemeConfig) { c.Primary = "#fff" }},
		{name: "missing hash", mutate: func(c *ThemeConfig) { c.Secondary = "f5e5e5" }, wantErr: true},
		{name: "named color", mutate: func(c *ThemeConfig) { c.Text = "black" }, wantErr: true},
		{name: "empty", mutate: func(c *ThemeConfig) { c.Background = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultThemeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
