package theme

import "portfolio/internal/ui/state"

// Palette holds the surface colors a host paints behind the styled widgets.
type Palette struct {
	Background Color
	Text       Color
	Accent     Color
}

func PaletteFor(t state.Theme) Palette {
	if t == state.Dark {
		return Palette{
			Background: RGB(0.125, 0.133, 0.145),
			Text:       White,
			Accent:     Accent,
		}
	}
	return Palette{
		Background: RGB(1, 1, 1),
		Text:       Black,
		Accent:     Accent,
	}
}

// Over composites c onto an opaque backdrop.
func (c Color) Over(backdrop Color) Color {
	a := c.A
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return RGB(backdrop.R, backdrop.G, backdrop.B)
	}
	return RGB(
		c.R*a+backdrop.R*(1-a),
		c.G*a+backdrop.G*(1-a),
		c.B*a+backdrop.B*(1-a),
	)
}
