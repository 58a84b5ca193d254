package types

import "github.com/go-playground/validator/v10"

// ThemeConfig holds the four base colors and the dark-mode flag every theme token derives from.
type ThemeConfig struct {
	Primary    string `json:"primary" validate:"required,hexcolor"`
	Secondary  string `json:"secondary" validate:"required,hexcolor"`
	Background string `json:"background" validate:"required,hexcolor"`
	Text       string `json:"text" validate:"required,hexcolor"`
	DarkMode   bool   `json:"darkMode"`
	PaletteID  string `json:"paletteId,omitempty"`
}

// DefaultThemeConfig returns the base colors used when a document carries no theme.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		Primary:    "#e3c9c9",
		Secondary:  "#f5e5e5",
		Background: "#f7f4ee",
		Text:       "#1a1a1a",
		DarkMode:   false,
	}
}

// Validate checks that every base color is a hex color.
func (c *ThemeConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
