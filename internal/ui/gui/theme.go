//go:build !headless

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"portfolio/internal/ui/state"
	uitheme "portfolio/internal/ui/theme"
)

// portfolioTheme pins the fyne variant to the viewer theme and paints the
// window surface from its palette. Everything else defers to the default.
type portfolioTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	palette uitheme.Palette
}

func newPortfolioTheme(t state.Theme) *portfolioTheme {
	variant := theme.VariantLight
	if t == state.Dark {
		variant = theme.VariantDark
	}
	return &portfolioTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		palette: uitheme.PaletteFor(t),
	}
}

func (t *portfolioTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.palette.Background.NRGBA()
	case theme.ColorNameForeground:
		return t.palette.Text.NRGBA()
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.palette.Accent.NRGBA()
	}
	return t.base.Color(name, t.variant)
}

func (t *portfolioTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *portfolioTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *portfolioTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameScrollBarSmall:
		return 4
	}
	return t.base.Size(name)
}
