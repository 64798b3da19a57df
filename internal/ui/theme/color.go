package theme

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float32
}

var (
	Transparent = Color{}
	White       = RGB(1, 1, 1)
	Black       = RGB(0, 0, 0)
	Accent      = RGB(0.2, 0.6, 1.0)
)

func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// NRGBA converts to the non-premultiplied 8-bit form used by image/color
// consumers.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: channel8(c.A)}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.2f, %.2f, %.2f, %.2f)", c.R, c.G, c.B, c.A)
}

func channel8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
