package rendering

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/site-customizer/internal/types"
)

// Verification is the result of checking rendered markup against the section flags
type Verification struct {
	Missing         []types.SectionName `json:"missing,omitempty"`
	Unexpected      []types.SectionName `json:"unexpected,omitempty"`
	OutOfOrder      bool                `json:"outOfOrder,omitempty"`
	DanglingAnchors []string            `json:"danglingAnchors,omitempty"`
}

// OK reports whether the markup carries exactly the active sections in page order.
// Dangling anchors do not affect OK; they are reported for linting.
func (v *Verification) OK() bool {
	return len(v.Missing) == 0 && len(v.Unexpected) == 0 && !v.OutOfOrder
}

// Err converts a section mismatch into a RenderError
func (v *Verification) Err() error {
	if v.OK() {
		return nil
	}
	var parts []string
	if len(v.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing sections %v", v.Missing))
	}
	if len(v.Unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("inactive sections rendered %v", v.Unexpected))
	}
	if v.OutOfOrder {
		parts = append(parts, "sections out of order")
	}
	return &RenderError{Message: strings.Join(parts, "; ")}
}

// VerifySections parses rendered HTML and checks that exactly the active sections are present,
// in page order, and that every in-page anchor has a target element.
func VerifySections(html string, sections types.Sections) (*Verification, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &RenderError{
			Message: "failed to parse rendered HTML",
			Cause:   err,
		}
	}

	var rendered []types.SectionName
	present := make(map[types.SectionName]bool)
	doc.Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		name := types.SectionName(s.AttrOr("data-section", ""))
		rendered = append(rendered, name)
		present[name] = true
	})

	v := &Verification{}
	for _, name := range types.SectionOrder {
		switch active := sections.Active(name); {
		case active && !present[name]:
			v.Missing = append(v.Missing, name)
		case !active && present[name]:
			v.Unexpected = append(v.Unexpected, name)
		}
	}

	expected := sections.ActiveNames()
	if len(v.Missing) == 0 && len(v.Unexpected) == 0 && !slices.Equal(rendered, expected) {
		v.OutOfOrder = true
	}

	v.DanglingAnchors = danglingAnchors(doc)
	return v, nil
}

// danglingAnchors lists in-page hrefs (#id) whose id is not in the document
func danglingAnchors(doc *goquery.Document) []string {
	ids := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		ids[s.AttrOr("id", "")] = true
	})

	seen := make(map[string]bool)
	var dangling []string
	doc.Find(`a[href^="#"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		id := strings.TrimPrefix(href, "#")
		if id == "" || ids[id] || seen[href] {
			return
		}
		seen[href] = true
		dangling = append(dangling, href)
	})
	return dangling
}
