// Package navigation builds the page header from the adapted menu.
package navigation

import (
	"net/url"
	"strings"

	"github.com/jonathan/site-customizer/internal/types"
)

// LinkKind classifies where a navigation link points
type LinkKind string

const (
	// KindAnchor scrolls to a section of the page (#id or bare id)
	KindAnchor LinkKind = "anchor"
	// KindExternal leaves the page (http, https, mailto, tel)
	KindExternal LinkKind = "external"
	// KindPath is a site-relative path such as /privacidade
	KindPath LinkKind = "path"
)

// Item is one resolved header link
type Item struct {
	Label     string
	Href      string
	Kind      LinkKind
	Highlight bool
}

// External reports whether the link should open outside the page
func (i Item) External() bool {
	return i.Kind == KindExternal
}

// Brand is the header logo area. When LogoURL is empty the name is shown as text.
type Brand struct {
	Name    string
	LogoURL string
}

// Header is the resolved navigation header
type Header struct {
	Brand Brand
	Items []Item
	CTA   Item
}

// BuildHeader resolves the adapted menu into header links
func BuildHeader(site *types.SiteData) Header {
	h := Header{
		Brand: Brand{Name: site.Identity.SiteName, LogoURL: site.Identity.LogoURL},
		Items: make([]Item, 0, len(site.Menu.Items)),
	}
	for _, link := range site.Menu.Items {
		h.Items = append(h.Items, resolve(link.Label, link.URL))
	}

	h.CTA = resolve(site.Menu.CTAButton.Label, site.Menu.CTAButton.URL)
	h.CTA.Highlight = site.Menu.CTAButton.Highlight
	return h
}

// ResolveLink resolves a single adapted link
func ResolveLink(link types.Link) Item {
	return resolve(link.Label, link.URL)
}

func resolve(label, raw string) Item {
	kind := Classify(raw)
	href := strings.TrimSpace(raw)
	if kind == KindAnchor {
		href = "#" + AnchorID(href)
	}
	return Item{Label: label, Href: href, Kind: kind}
}

// Classify decides the kind of a link target
func Classify(raw string) LinkKind {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "#"):
		return KindAnchor
	case strings.HasPrefix(raw, "/"):
		if strings.HasPrefix(raw, "//") {
			return KindExternal
		}
		return KindPath
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return KindAnchor
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto", "tel":
		return KindExternal
	default:
		return KindAnchor
	}
}

// AnchorID strips the leading # from an in-page target
func AnchorID(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "#")
}
