package types

import "slices"

// SiteData is the canonical, adapted structure consumed by presentation code.
// It is built fresh from a RawConfig and must be treated as read-only.
type SiteData struct {
	Version      string        `json:"version"`
	Identity     Identity      `json:"identity"`
	Menu         Menu          `json:"menu"`
	Contact      Contact       `json:"contact"`
	SocialLinks  SocialLinks   `json:"socialLinks"`
	Integrations Integrations  `json:"integrations"`
	Hero         Hero          `json:"hero"`
	Headings     Headings      `json:"headings"`
	Benefits     []Benefit     `json:"benefits"`
	Services     []Service     `json:"services"`
	About        About         `json:"about"`
	Testimonials []Testimonial `json:"testimonials"`
	CTA          CTA           `json:"cta"`
	FAQ          []FAQEntry    `json:"faq"`
	Footer       Footer        `json:"footer"`
	Sections     Sections      `json:"sections"`
	Settings     Settings      `json:"settings"`
}

// Identity holds branding and SEO metadata
type Identity struct {
	SiteName    string   `json:"siteName"`
	LogoURL     string   `json:"logoUrl"`
	FaviconURL  string   `json:"faviconUrl"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Link is a labeled URL
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// CTAButton is the header call-to-action
type CTAButton struct {
	Label     string `json:"label"`
	URL       string `json:"url"`
	Highlight bool   `json:"highlight"`
}

// Menu holds navigation items and the header CTA
type Menu struct {
	Items     []Link    `json:"items"`
	CTAButton CTAButton `json:"ctaButton"`
}

// Contact holds contact channels
type Contact struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// SocialLinks holds social profile URLs
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

// Integrations holds analytics identifiers
type Integrations struct {
	GoogleAnalyticsID string `json:"googleAnalyticsId"`
	MetaPixelID       string `json:"metaPixelId"`
	GoogleAdsID       string `json:"googleAdsId"`
}

// Hero is the hero banner
type Hero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CTA             string `json:"cta"`
	CTAURL          string `json:"ctaUrl"`
	Image           string `json:"image"`
	Badge           string `json:"badge"`
	SecondaryButton Link   `json:"secondaryButton"`
}

// SectionHeading is the badge, title and optional lead text above a list section
type SectionHeading struct {
	Badge       string `json:"badge"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Headings holds the headings of the list sections. Only services carries a description.
type Headings struct {
	Benefits     SectionHeading `json:"benefits"`
	Services     SectionHeading `json:"services"`
	Testimonials SectionHeading `json:"testimonials"`
	FAQ          SectionHeading `json:"faq"`
}

// Benefit is a single benefit card
type Benefit struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service is a single service offering
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// About is the about block. Name carries the raw title and Title the raw badge.
type About struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Image       string   `json:"image"`
}

// Testimonial is a single client testimonial
type Testimonial struct {
	Name  string `json:"name"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

// CTA is the closing call-to-action block
type CTA struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
	ButtonURL  string `json:"buttonUrl"`
}

// FAQEntry is a single question and answer
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Footer holds footer content
type Footer struct {
	BrandDescription         string `json:"brandDescription"`
	Copyright                string `json:"copyright"`
	ProfessionalRegistration string `json:"professionalRegistration"`
	Links                    []Link `json:"links"`
}

// Settings holds theme and feature settings. Theme is nil when the raw document has none.
type Settings struct {
	Theme    *ThemeConfig `json:"theme,omitempty"`
	Features Features     `json:"features"`
}

// Features holds feature flags
type Features struct {
	BlogEnabled    bool `json:"blogEnabled"`
	NoticesEnabled bool `json:"noticesEnabled"`
}

// Clone returns a deep copy of the site data.
func (s *SiteData) Clone() *SiteData {
	if s == nil {
		return nil
	}
	c := *s
	c.Identity.Keywords = slices.Clone(s.Identity.Keywords)
	c.Menu.Items = slices.Clone(s.Menu.Items)
	c.Benefits = slices.Clone(s.Benefits)
	c.Services = make([]Service, len(s.Services))
	for i, svc := range s.Services {
		svc.Topics = slices.Clone(svc.Topics)
		c.Services[i] = svc
	}
	if s.Services == nil {
		c.Services = nil
	}
	c.About.Highlights = slices.Clone(s.About.Highlights)
	c.Testimonials = slices.Clone(s.Testimonials)
	c.FAQ = slices.Clone(s.FAQ)
	c.Footer.Links = slices.Clone(s.Footer.Links)
	if s.Settings.Theme != nil {
		theme := *s.Settings.Theme
		c.Settings.Theme = &theme
	}
	return &c
}
