// Package ui holds the colour and table helpers shared by the command-line
// output and the panels.
package ui

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pterm/pterm"
)

const (
	darkBackground  = "#000000"
	lightBackground = "#FFFFFF"
)

// Background is the assumed terminal background for the current theme.
func Background() string {
	if DarkTheme {
		return darkBackground
	}

	return lightBackground
}

// Tint returns base drawn at the given opacity over the theme background.
// Terminals have no alpha channel, so the colour is blended instead. An
// unparsable base is returned as is.
func Tint(base string, alpha float64) string {
	if alpha >= 1 {
		return base
	}

	c, err := colorful.Hex(base)
	if err != nil {
		return base
	}

	bg, _ := colorful.Hex(Background())

	if alpha < 0 {
		alpha = 0
	}

	return bg.BlendRgb(c, alpha).Clamped().Hex()
}

// Swatch renders a block of the given colour for terminal output.
func Swatch(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "  "
	}

	r, g, b := c.RGB255()

	return pterm.NewRGB(r, g, b).Sprint("████")
}
