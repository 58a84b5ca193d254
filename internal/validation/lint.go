package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/site-customizer/internal/adapter"
	"github.com/jonathan/site-customizer/internal/icons"
	"github.com/jonathan/site-customizer/internal/navigation"
	"github.com/jonathan/site-customizer/internal/types"
)

// Violation types reported by LintSite
const (
	TypeInvalidColor   = "invalid_color"
	TypeMissingTheme   = "missing_theme"
	TypeInvalidEmail   = "invalid_email"
	TypeInvalidURL     = "invalid_url"
	TypeEmptySection   = "empty_section"
	TypeUnknownIcon    = "unknown_icon"
	TypeMissingName    = "missing_site_name"
	TypeDanglingAnchor = "dangling_anchor"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// sitelink accepts absolute URLs plus the in-page and site-relative targets menus use
	_ = v.RegisterValidation("sitelink", func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())
		switch navigation.Classify(value) {
		case navigation.KindExternal:
			if scheme, rest, _ := strings.Cut(value, ":"); scheme == "mailto" || scheme == "tel" {
				return rest != ""
			}
			return v.Var(value, "url") == nil
		case navigation.KindPath:
			return true
		default:
			return value != "" && !strings.Contains(value, ":")
		}
	})
	return v
}

// LintSite checks adapted site data. Findings never block adaptation; only invalid theme
// colors are reported with error severity because they stop palette derivation.
func LintSite(site *types.SiteData) *types.Violations {
	var all []types.Violation

	all = append(all, checkIdentity(site)...)
	all = append(all, checkTheme(site.Settings.Theme)...)
	all = append(all, checkContact(site)...)
	all = append(all, checkLinks(site)...)
	all = append(all, checkSections(site)...)
	all = append(all, checkIcons(site)...)

	return &types.Violations{Violations: all}
}

// LintFile loads a configuration document and lints the adapted result
func LintFile(path string) (*types.Violations, error) {
	site, err := adapter.LoadFile(path)
	if err != nil {
		var mismatch *adapter.SchemaMismatchError
		if errors.As(err, &mismatch) {
			return nil, &Error{Message: "configuration does not match the supported schema", Cause: err}
		}
		return nil, &Error{Message: fmt.Sprintf("failed to load %s", path), Cause: err}
	}
	return LintSite(site), nil
}

// AnchorViolations turns dangling in-page anchors found in rendered markup into warnings
func AnchorViolations(anchors []string) []types.Violation {
	out := make([]types.Violation, 0, len(anchors))
	for _, a := range anchors {
		out = append(out, types.Violation{
			Type:     TypeDanglingAnchor,
			Severity: types.SeverityWarning,
			Field:    "menu",
			Details:  "link target is not rendered on the page",
			Value:    a,
		})
	}
	return out
}

func checkIdentity(site *types.SiteData) []types.Violation {
	if strings.TrimSpace(site.Identity.SiteName) != "" {
		return nil
	}
	return []types.Violation{{
		Type:     TypeMissingName,
		Severity: types.SeverityWarning,
		Field:    "identity.siteName",
		Details:  "site name is empty; the default brand title will be shown",
	}}
}

func checkTheme(theme *types.ThemeConfig) []types.Violation {
	if theme == nil {
		return []types.Violation{{
			Type:     TypeMissingTheme,
			Severity: types.SeverityWarning,
			Field:    "settings.theme",
			Details:  "no theme configured; the default palette will be used",
		}}
	}

	err := theme.Validate()
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []types.Violation{{
			Type:     TypeInvalidColor,
			Severity: types.SeverityError,
			Field:    "settings.theme",
			Details:  err.Error(),
		}}
	}

	violations := make([]types.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, types.Violation{
			Type:     TypeInvalidColor,
			Severity: types.SeverityError,
			Field:    "settings.theme." + lowerFirst(fe.Field()),
			Details:  fmt.Sprintf("failed %q check", fe.Tag()),
			Value:    fmt.Sprint(fe.Value()),
		})
	}
	return violations
}

func checkContact(site *types.SiteData) []types.Violation {
	email := strings.TrimSpace(site.Contact.Email)
	if email == "" || validate.Var(email, "email") == nil {
		return nil
	}
	return []types.Violation{{
		Type:     TypeInvalidEmail,
		Severity: types.SeverityWarning,
		Field:    "contact.email",
		Details:  "contact email is not a valid address",
		Value:    email,
	}}
}

func checkLinks(site *types.SiteData) []types.Violation {
	var violations []types.Violation
	check := func(field, value, tag string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		if err := validate.Var(value, tag); err != nil {
			violations = append(violations, types.Violation{
				Type:     TypeInvalidURL,
				Severity: types.SeverityWarning,
				Field:    field,
				Details:  fmt.Sprintf("value fails %q check", tag),
				Value:    value,
			})
		}
	}

	check("socialLinks.instagram", site.SocialLinks.Instagram, "url")
	check("socialLinks.facebook", site.SocialLinks.Facebook, "url")
	for i, item := range site.Menu.Items {
		check(fmt.Sprintf("menu.items[%d].url", i), item.URL, "sitelink")
	}
	check("menu.ctaButton.url", site.Menu.CTAButton.URL, "sitelink")
	check("hero.ctaUrl", site.Hero.CTAURL, "sitelink")
	check("hero.secondaryButton.url", site.Hero.SecondaryButton.URL, "sitelink")
	check("cta.buttonUrl", site.CTA.ButtonURL, "sitelink")
	for i, link := range site.Footer.Links {
		check(fmt.Sprintf("footer.links[%d].url", i), link.URL, "sitelink")
	}
	return violations
}

func checkSections(site *types.SiteData) []types.Violation {
	empty := map[types.SectionName]bool{
		types.SectionBenefits:     len(site.Benefits) == 0,
		types.SectionServices:     len(site.Services) == 0,
		types.SectionTestimonials: len(site.Testimonials) == 0,
		types.SectionFAQ:          len(site.FAQ) == 0,
		types.SectionHero:         site.Hero.Title == "",
		types.SectionAbout:        site.About.Name == "" && site.About.Description == "",
		types.SectionCTA:          site.CTA.Title == "",
	}

	var violations []types.Violation
	for _, name := range site.Sections.ActiveNames() {
		if empty[name] {
			violations = append(violations, types.Violation{
				Type:     TypeEmptySection,
				Severity: types.SeverityWarning,
				Field:    "sections." + string(name),
				Details:  "section is active but has no content",
			})
		}
	}
	return violations
}

func checkIcons(site *types.SiteData) []types.Violation {
	if !site.Sections.Active(types.SectionBenefits) {
		return nil
	}
	var violations []types.Violation
	for i, b := range site.Benefits {
		if _, err := icons.Lookup(b.Icon); err != nil {
			violations = append(violations, types.Violation{
				Type:     TypeUnknownIcon,
				Severity: types.SeverityWarning,
				Field:    fmt.Sprintf("benefits[%d].icon", i),
				Details:  fmt.Sprintf("unknown icon, %q is shown instead", icons.Fallback),
				Value:    b.Icon,
			})
		}
	}
	return violations
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
