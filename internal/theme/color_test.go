package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
	}{
		{input: "#e3c9c9", want: RGB{R: 0xe3, G: 0xc9, B: 0xc9}},
		{input: "e3c9c9", want: RGB{R: 0xe3, G: 0xc9, B: 0xc9}},
		{input: "#FFF", want: RGB{R: 255, G: 255, B: 255}},
		{input: "0a8", want: RGB{R: 0x00, G: 0xaa, B: 0x88}},
		{input: " #1A1A1A ", want: RGB{R: 0x1a, G: 0x1a, B: 0x1a}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "#", "#12345", "#1234567", "rosa", "#gg0000", "+12345", "#e3c9c9ff"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHex(input)
			require.Error(t, err)

			var colorErr *InvalidColorFormatError
			require.ErrorAs(t, err, &colorErr)
			assert.Equal(t, input, colorErr.Input)
		})
	}
}

func TestColorToHSL(t *testing.T) {
	tests := []struct {
		input string
		want  HSL
	}{
		{input: "#FF0000", want: HSL{H: 0, S: 100, L: 50}},
		{input: "#00ff00", want: HSL{H: 120, S: 100, L: 50}},
		{input: "#0000ff", want: HSL{H: 240, S: 100, L: 50}},
		{input: "#808080", want: HSL{H: 0, S: 0, L: 50}},
		{input: "#ffffff", want: HSL{H: 0, S: 0, L: 100}},
		{input: "#000000", want: HSL{H: 0, S: 0, L: 0}},
		{input: "#e3c9c9", want: HSL{H: 0, S: 32, L: 84}},
		{input: "#f7f4ee", want: HSL{H: 40, S: 36, L: 95}},
		{input: "#1e3a8a", want: HSL{H: 224, S: 64, L: 33}},
		{input: "#334155", want: HSL{H: 215, S: 25, L: 27}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ColorToHSL(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHSL_String(t *testing.T) {
	assert.Equal(t, "0 100% 50%", HSL{H: 0, S: 100, L: 50}.String())
	assert.Equal(t, "224 64% 33%", HSL{H: 224, S: 64, L: 33}.String())
}

func TestParseHSL(t *testing.T) {
	got, err := ParseHSL("40 36% 95%")
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 40, S: 36, L: 95}, got)

	_, err = ParseHSL("hsl(40, 36%, 95%)")
	assert.Error(t, err)
}

func TestContrastingForeground(t *testing.T) {
	fg, err := ContrastingForeground("#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, NearBlack, fg)
	assert.Equal(t, "0 0% 10%", fg.String())

	fg, err = ContrastingForeground("#000000")
	require.NoError(t, err)
	assert.Equal(t, NearWhite, fg)
	assert.Equal(t, "0 0% 98%", fg.String())

	// pure red is dark by luma despite full lightness
	fg, err = ContrastingForeground("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, NearWhite, fg)

	// #808080 sits just above the midpoint
	fg, err = ContrastingForeground("#808080")
	require.NoError(t, err)
	assert.Equal(t, NearBlack, fg)

	_, err = ContrastingForeground("nope")
	assert.Error(t, err)
}

func TestForegroundForLuma_Threshold(t *testing.T) {
	assert.Equal(t, NearWhite, foregroundForLuma(0.5))
	assert.Equal(t, NearBlack, foregroundForLuma(0.5000001))
	assert.Equal(t, NearWhite, foregroundForLuma(0))
	assert.Equal(t, NearBlack, foregroundForLuma(1))
}

func TestDeriveVariations(t *testing.T) {
	v, err := DeriveVariations("#e3c9c9")
	require.NoError(t, err)

	assert.Equal(t, HSL{H: 0, S: 32, L: 84}, v.Base)
	assert.Equal(t, HSL{H: 0, S: 42, L: 95}, v.Lighter)
	assert.Equal(t, HSL{H: 0, S: 32, L: 69}, v.Darker)
	assert.Equal(t, HSL{H: 0, S: 10, L: 90}, v.Muted)
}

func TestDeriveVariations_Clamped(t *testing.T) {
	for _, input := range []string{"#ffffff", "#000000", "#ff0000", "#808080", "#0f172a", "#f8fafc"} {
		t.Run(input, func(t *testing.T) {
			v, err := DeriveVariations(input)
			require.NoError(t, err)

			assert.LessOrEqual(t, v.Lighter.L, 95)
			assert.LessOrEqual(t, v.Lighter.S, 100)
			assert.GreaterOrEqual(t, v.Darker.L, 5)
			assert.Equal(t, v.Base.S, v.Darker.S)
			assert.GreaterOrEqual(t, v.Muted.S, 10)
			assert.LessOrEqual(t, v.Muted.L, 90)
			assert.Equal(t, v.Base.H, v.Lighter.H)
		})
	}
}

func TestVariationsOf_Extremes(t *testing.T) {
	v := variationsOf(HSL{H: 10, S: 100, L: 100})
	assert.Equal(t, HSL{H: 10, S: 100, L: 95}, v.Lighter)
	assert.Equal(t, HSL{H: 10, S: 100, L: 85}, v.Darker)
	assert.Equal(t, HSL{H: 10, S: 70, L: 90}, v.Muted)

	v = variationsOf(HSL{H: 10, S: 0, L: 0})
	assert.Equal(t, HSL{H: 10, S: 10, L: 15}, v.Lighter)
	assert.Equal(t, HSL{H: 10, S: 0, L: 5}, v.Darker)
	assert.Equal(t, HSL{H: 10, S: 10, L: 20}, v.Muted)
}
