package types

// SectionName identifies an optional content area of the page
type SectionName string

const (
	SectionHero         SectionName = "hero"
	SectionBenefits     SectionName = "benefits"
	SectionServices     SectionName = "services"
	SectionAbout        SectionName = "about"
	SectionTestimonials SectionName = "testimonials"
	SectionCTA          SectionName = "cta"
	SectionFAQ          SectionName = "faq"
)

// SectionOrder is the fixed order in which sections appear on the page.
var SectionOrder = []SectionName{
	SectionHero,
	SectionBenefits,
	SectionServices,
	SectionAbout,
	SectionTestimonials,
	SectionCTA,
	SectionFAQ,
}

// SectionState carries a section's visibility flag
type SectionState struct {
	Active bool `json:"active"`
}

// Sections holds one visibility flag per optional content area
type Sections struct {
	Hero         SectionState `json:"hero"`
	Benefits     SectionState `json:"benefits"`
	Services     SectionState `json:"services"`
	About        SectionState `json:"about"`
	Testimonials SectionState `json:"testimonials"`
	CTA          SectionState `json:"cta"`
	FAQ          SectionState `json:"faq"`
}

// Active reports whether the named section should be rendered.
// Unknown names are never active.
func (s Sections) Active(name SectionName) bool {
	switch name {
	case SectionHero:
		return s.Hero.Active
	case SectionBenefits:
		return s.Benefits.Active
	case SectionServices:
		return s.Services.Active
	case SectionAbout:
		return s.About.Active
	case SectionTestimonials:
		return s.Testimonials.Active
	case SectionCTA:
		return s.CTA.Active
	case SectionFAQ:
		return s.FAQ.Active
	default:
		return false
	}
}

// ActiveNames returns the active sections in page order.
func (s Sections) ActiveNames() []SectionName {
	var names []SectionName
	for _, name := range SectionOrder {
		if s.Active(name) {
			names = append(names, name)
		}
	}
	return names
}
