package rendering

import (
	"strings"

	"github.com/jonathan/site-customizer/internal/theme"
)

// RenderThemeCSS renders the palette as a stylesheet. The palette is always declared on
// :root; a dark palette also carries the .dark marker rule so styling keyed on the class
// sees the same values.
func RenderThemeCSS(tokens *theme.Tokens) string {
	var sb strings.Builder
	sb.WriteString("/* generated by site-customizer */\n")
	sb.WriteString(tokens.CSS(":root"))
	if tokens.DarkMode() {
		sb.WriteString("\n")
		sb.WriteString(tokens.CSS("." + theme.DarkClass))
		sb.WriteString("\n:root { color-scheme: dark; }\n")
	}
	return sb.String()
}
