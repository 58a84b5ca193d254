// Package analytics plans the third-party tracking tags for the configured integrations.
package analytics

import (
	"net/url"
	"strings"

	"github.com/jonathan/site-customizer/internal/types"
)

// Provider names an analytics integration
type Provider string

const (
	ProviderGoogleAnalytics Provider = "google-analytics"
	ProviderGoogleAds       Provider = "google-ads"
	ProviderMetaPixel       Provider = "meta-pixel"
)

const (
	gtagLoaderBase = "https://www.googletagmanager.com/gtag/js?id="
	metaPixelSrc   = "https://connect.facebook.net/en_US/fbevents.js"
)

// Tag is one integration to load on the page. LoaderSrc is empty when the tag reuses a
// loader emitted by an earlier tag.
type Tag struct {
	Provider  Provider
	ID        string
	LoaderSrc string
}

// Plan returns the tags to emit, in order: Google Analytics, Google Ads, Meta Pixel.
// Blank IDs are skipped and the gtag loader is emitted once even when both Google
// integrations are configured.
func Plan(integrations types.Integrations) []Tag {
	var tags []Tag

	gaID := strings.TrimSpace(integrations.GoogleAnalyticsID)
	adsID := strings.TrimSpace(integrations.GoogleAdsID)
	pixelID := strings.TrimSpace(integrations.MetaPixelID)

	if gaID != "" {
		tags = append(tags, Tag{Provider: ProviderGoogleAnalytics, ID: gaID, LoaderSrc: GtagLoader(gaID)})
	}
	if adsID != "" {
		tag := Tag{Provider: ProviderGoogleAds, ID: adsID}
		if gaID == "" {
			tag.LoaderSrc = GtagLoader(adsID)
		}
		tags = append(tags, tag)
	}
	if pixelID != "" {
		tags = append(tags, Tag{Provider: ProviderMetaPixel, ID: pixelID, LoaderSrc: metaPixelSrc})
	}
	return tags
}

// GtagLoader returns the gtag.js URL for a measurement or conversion ID
func GtagLoader(id string) string {
	return gtagLoaderBase + url.QueryEscape(id)
}

// UsesGtag reports whether the tag is configured through gtag
func (t Tag) UsesGtag() bool {
	return t.Provider == ProviderGoogleAnalytics || t.Provider == ProviderGoogleAds
}
