// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/site-customizer/internal/theme"
	"github.com/jonathan/site-customizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// paletteSummary lists the tokens shown in the palette box
var paletteSummary = []string{
	theme.TokenPrimary,
	theme.TokenPrimaryForeground,
	theme.TokenSecondary,
	theme.TokenBackground,
	theme.TokenForeground,
	theme.TokenAccent,
	theme.TokenMuted,
	theme.TokenMutedForeground,
	theme.TokenBorder,
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, ending in "..." when cut
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintSite outputs a human-readable summary of the merged site data.
func (p *Printer) PrintSite(site *types.SiteData) {
	if site == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Site:     %s\n", site.Identity.SiteName))
	sb.WriteString(fmt.Sprintf("Version:  %s\n", site.Version))
	if site.About.Name != "" {
		sb.WriteString(fmt.Sprintf("About:    %s", site.About.Name))
		if site.About.Title != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", site.About.Title))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	active := site.Sections.ActiveNames()
	sb.WriteString(fmt.Sprintf("Active sections (%d):\n", len(active)))
	for _, name := range active {
		sb.WriteString(fmt.Sprintf("  • %s\n", name))
	}

	if len(site.Menu.Items) > 0 {
		sb.WriteString("\nMenu:\n")
		count := min(len(site.Menu.Items), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := site.Menu.Items[i]
			sb.WriteString(fmt.Sprintf("  • %s -> %s\n", item.Label, item.URL))
		}
		if len(site.Menu.Items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(site.Menu.Items)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\nBenefits: %d  Services: %d  Testimonials: %d  FAQ: %d",
		len(site.Benefits), len(site.Services), len(site.Testimonials), len(site.FAQ)))

	p.printBox("ADAPTED SITE", sb.String())
}

// PrintPalette outputs the headline tokens of a derived palette.
func (p *Printer) PrintPalette(tokens *theme.Tokens) {
	if tokens == nil {
		return
	}

	var sb strings.Builder
	mode := "light"
	if tokens.DarkMode() {
		mode = "dark"
	}
	sb.WriteString(fmt.Sprintf("Mode:   %s\n", mode))
	sb.WriteString(fmt.Sprintf("Tokens: %d\n\n", tokens.Len()))

	for _, name := range paletteSummary {
		sb.WriteString(fmt.Sprintf("  %-18s %s\n", name, tokens.Value(name)))
	}
	if hidden := tokens.Len() - len(paletteSummary); hidden > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more", hidden))
	}

	p.printBox("THEME PALETTE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any lint findings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		marker := "⚠"
		if v.Severity == types.SeverityError {
			marker = "✖"
		}
		sb.WriteString(fmt.Sprintf("%s %s [%s]\n", marker, v.Type, v.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 45)))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LINT FINDINGS", sb.String())
}
