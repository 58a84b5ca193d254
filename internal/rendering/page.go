package rendering

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/site-customizer/internal/analytics"
	"github.com/jonathan/site-customizer/internal/icons"
	"github.com/jonathan/site-customizer/internal/navigation"
	"github.com/jonathan/site-customizer/internal/theme"
	"github.com/jonathan/site-customizer/internal/types"
)

// sectionAnchors maps each section to the element id menu links scroll to
var sectionAnchors = map[types.SectionName]string{
	types.SectionHero:         "inicio",
	types.SectionBenefits:     "beneficios",
	types.SectionServices:     "servicos",
	types.SectionAbout:        "sobre",
	types.SectionTestimonials: "depoimentos",
	types.SectionCTA:          "contato",
	types.SectionFAQ:          "faq",
}

// SectionAnchor returns the element id rendered for a section
func SectionAnchor(name types.SectionName) string {
	if id, ok := sectionAnchors[name]; ok {
		return id
	}
	return string(name)
}

// BenefitView is a benefit card with its icon resolved
type BenefitView struct {
	Icon        icons.Icon
	Title       string
	Description string
}

// PageData is everything the page template reads
type PageData struct {
	Site           *types.SiteData
	Header         navigation.Header
	Sections       []types.SectionName
	Benefits       []BenefitView
	HeroPrimary    *navigation.Item
	HeroSecondary  *navigation.Item
	CTAButton      *navigation.Item
	FooterLinks    []navigation.Item
	Tags           []analytics.Tag
	DarkMode       bool
	StylesheetHref string
	LiveReload     bool
}

// PageOptions tweaks page assembly
type PageOptions struct {
	StylesheetHref string
	LiveReload     bool
}

// BuildPageData assembles template data from merged site data and the derived palette
func BuildPageData(site *types.SiteData, tokens *theme.Tokens, opts PageOptions) *PageData {
	benefits := make([]BenefitView, len(site.Benefits))
	for i, b := range site.Benefits {
		benefits[i] = BenefitView{Icon: icons.Resolve(b.Icon), Title: b.Title, Description: b.Description}
	}

	footerLinks := make([]navigation.Item, len(site.Footer.Links))
	for i, l := range site.Footer.Links {
		footerLinks[i] = navigation.ResolveLink(l)
	}

	href := opts.StylesheetHref
	if href == "" {
		href = "theme.css"
	}

	return &PageData{
		Site:           site,
		Header:         navigation.BuildHeader(site),
		Sections:       site.Sections.ActiveNames(),
		Benefits:       benefits,
		HeroPrimary:    optionalLink(site.Hero.CTA, site.Hero.CTAURL),
		HeroSecondary:  optionalLink(site.Hero.SecondaryButton.Label, site.Hero.SecondaryButton.URL),
		CTAButton:      optionalLink(site.CTA.ButtonText, site.CTA.ButtonURL),
		FooterLinks:    footerLinks,
		Tags:           analytics.Plan(site.Integrations),
		DarkMode:       tokens != nil && tokens.DarkMode(),
		StylesheetHref: href,
		LiveReload:     opts.LiveReload,
	}
}

func optionalLink(label, url string) *navigation.Item {
	if label == "" {
		return nil
	}
	item := navigation.ResolveLink(types.Link{Label: label, URL: url})
	return &item
}

// RenderPage renders the landing page with the embedded template
func RenderPage(page *PageData) (string, error) {
	tmpl, err := pageTemplate()
	if err != nil {
		return "", err
	}
	return execute(tmpl, page)
}

// RenderPageWithTemplate renders the landing page with a template file that defines "page"
func RenderPageWithTemplate(page *PageData, templatePath string) (string, error) {
	tmpl, err := parseTemplateFile(templatePath)
	if err != nil {
		return "", err
	}
	return execute(tmpl, page)
}

func execute(tmpl *template.Template, page *PageData) (string, error) {
	if page == nil || page.Site == nil {
		return "", &RenderError{Message: "page data is missing site content"}
	}

	var result strings.Builder
	if err := tmpl.ExecuteTemplate(&result, "page", page); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"anchor": func(name string) string {
			return SectionAnchor(types.SectionName(name))
		},
		"href":         linkHref,
		"telLink":      TelLink,
		"whatsAppLink": WhatsAppLink,
		"tagInit":      tagInit,
	}
}

// linkHref trusts hrefs navigation already classified; anything else became an anchor
func linkHref(item navigation.Item) template.URL {
	return template.URL(item.Href)
}

// TelLink builds a tel: URL keeping only dialable characters
func TelLink(phone string) template.URL {
	return template.URL("tel:" + keep(phone, func(r rune) bool {
		return r == '+' || (r >= '0' && r <= '9')
	}))
}

// WhatsAppLink builds a wa.me link from a phone number
func WhatsAppLink(number string) template.URL {
	return template.URL("https://wa.me/" + keep(number, func(r rune) bool {
		return r >= '0' && r <= '9'
	}))
}

func keep(s string, ok func(rune) bool) string {
	var sb strings.Builder
	for _, r := range s {
		if ok(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// tagInit returns the bootstrap call for an analytics tag. IDs are emitted as JSON strings.
// Only the gtag tag that carries the loader defines dataLayer and gtag; later gtag tags
// just add their config.
func tagInit(tag analytics.Tag) template.JS {
	quoted, err := json.Marshal(tag.ID)
	if err != nil {
		return ""
	}
	id := string(quoted)
	switch {
	case tag.UsesGtag() && tag.LoaderSrc != "":
		return template.JS(fmt.Sprintf(
			"window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',%s);", id))
	case tag.UsesGtag():
		return template.JS(fmt.Sprintf("gtag('config',%s);", id))
	case tag.Provider == analytics.ProviderMetaPixel:
		return template.JS(fmt.Sprintf(
			"!function(f){if(f.fbq)return;var n=f.fbq=function(){n.callMethod?n.callMethod.apply(n,arguments):n.queue.push(arguments)};"+
				"if(!f._fbq)f._fbq=n;n.push=n;n.loaded=!0;n.version='2.0';n.queue=[]}(window);fbq('init',%s);fbq('track','PageView');", id))
	default:
		return ""
	}
}
