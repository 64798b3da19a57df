package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	uitheme "portfolio/internal/ui/theme"
)

var (
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ButtonBorder = lipgloss.RoundedBorder()
	FocusBorder  = lipgloss.ThickBorder()
)

// Blend composites c over an opaque backdrop. Terminals have no alpha, so
// every translucent surface is flattened against whatever it sits on.
func Blend(c uitheme.Color, backdrop colorful.Color) colorful.Color {
	if c.A <= 0 {
		return backdrop
	}
	fg := toColorful(c)
	if c.A >= 1 {
		return fg
	}
	return backdrop.BlendRgb(fg, float64(c.A)).Clamped()
}

// Opaque drops the alpha channel.
func Opaque(c uitheme.Color) colorful.Color {
	return toColorful(c)
}

func Lip(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func toColorful(c uitheme.Color) colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped()
}
