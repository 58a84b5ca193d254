// Package theme derives a full UI color palette from four base colors and publishes it as
// style custom properties.
package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an sRGB color with 8-bit channels
type RGB struct {
	R, G, B uint8
}

// HSL is a color in hue (degrees) / saturation (percent) / lightness (percent),
// rounded to integers.
type HSL struct {
	H, S, L int
}

// String formats the color as a CSS custom property value, "H S% L%".
func (c HSL) String() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

var (
	// NearBlack is the foreground used on light colors
	NearBlack = HSL{H: 0, S: 0, L: 10}
	// NearWhite is the foreground used on dark colors
	NearWhite = HSL{H: 0, S: 0, L: 98}
)

// ParseHex parses #rrggbb, rrggbb, #rgb or rgb (case-insensitive).
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return RGB{}, &InvalidColorFormatError{
			Input:  hex,
			Reason: fmt.Sprintf("expected 3 or 6 hex digits, got %d", len(digits)),
		}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, &InvalidColorFormatError{Input: hex, Reason: "contains non-hex characters"}
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ToHSL converts the color to rounded HSL. Achromatic colors get zero hue and saturation.
func (c RGB) ToHSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h * 360)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// Luma is the perceptual brightness (0.299 r + 0.587 g + 0.114 b) normalized to [0,1].
func (c RGB) Luma() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// ColorToHSL parses a hex color and converts it to HSL
func ColorToHSL(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return rgb.ToHSL(), nil
}

// ContrastingForeground returns NearBlack when the color's luma is strictly above 0.5,
// otherwise NearWhite.
func ContrastingForeground(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return foregroundForLuma(rgb.Luma()), nil
}

func foregroundForLuma(luma float64) HSL {
	if luma > 0.5 {
		return NearBlack
	}
	return NearWhite
}

// Variations are the UI state tones derived from one base color
type Variations struct {
	Base    HSL
	Lighter HSL
	Darker  HSL
	Muted   HSL
}

// DeriveVariations builds lighter, darker and muted tones from a hex color.
// Every adjustment is clamped: lighter stays at or below 95% lightness, darker at or above
// 5%, muted keeps at least 10% saturation.
func DeriveVariations(hex string) (Variations, error) {
	base, err := ColorToHSL(hex)
	if err != nil {
		return Variations{}, err
	}
	return variationsOf(base), nil
}

func variationsOf(base HSL) Variations {
	return Variations{
		Base:    base,
		Lighter: HSL{H: base.H, S: min(base.S+10, 100), L: min(base.L+15, 95)},
		Darker:  HSL{H: base.H, S: base.S, L: max(base.L-15, 5)},
		Muted:   HSL{H: base.H, S: max(base.S-30, 10), L: min(base.L+20, 90)},
	}
}

// ParseHSL parses a "H S% L%" custom property value
func ParseHSL(value string) (HSL, error) {
	var c HSL
	if _, err := fmt.Sscanf(value, "%d %d%% %d%%", &c.H, &c.S, &c.L); err != nil {
		return HSL{}, fmt.Errorf("invalid HSL value %q: %w", value, err)
	}
	return c, nil
}
