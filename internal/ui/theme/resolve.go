// Package theme resolves the visual appearance of every widget kind the
// viewer draws. Resolution is a pure lookup over (kind, theme, flags); no
// result is cached or counted.
package theme

import (
	"fmt"

	"portfolio/internal/ui/state"
)

// Kind is the closed set of styled widget kinds.
type Kind int

const (
	NavButton Kind = iota + 1
	PrimaryButton
	SecondaryButton
	ThemeToggleButton
	Card
	Navbar
	Hero
	TechPill
	ProgressTrack
	ProgressFill
)

var kindOrder = []Kind{
	NavButton,
	PrimaryButton,
	SecondaryButton,
	ThemeToggleButton,
	Card,
	Navbar,
	Hero,
	TechPill,
	ProgressTrack,
	ProgressFill,
}

func Kinds() []Kind {
	return append([]Kind(nil), kindOrder...)
}

func (k Kind) String() string {
	switch k {
	case NavButton:
		return "nav-button"
	case PrimaryButton:
		return "primary-button"
	case SecondaryButton:
		return "secondary-button"
	case ThemeToggleButton:
		return "theme-toggle-button"
	case Card:
		return "card"
	case Navbar:
		return "navbar"
	case Hero:
		return "hero"
	case TechPill:
		return "tech-pill"
	case ProgressTrack:
		return "progress-track"
	case ProgressFill:
		return "progress-fill"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsButton reports whether the kind styles a pressable control.
func (k Kind) IsButton() bool {
	switch k {
	case NavButton, PrimaryButton, SecondaryButton, ThemeToggleButton:
		return true
	}
	return false
}

// Flags carries per-instance interaction state. Only NavButton reads it.
type Flags struct {
	Active bool
}

// Appearance is a fully resolved look for one widget instance. TextSet is
// false for containers, which inherit the theme text color.
type Appearance struct {
	Background   Color
	Text         Color
	TextSet      bool
	BorderRadius float32
	BorderWidth  float32
	BorderColor  Color
}

const (
	buttonRadius      = 8
	toggleRadius      = 20
	cardRadius        = 16
	navbarRadius      = 16
	heroRadius        = 20
	pillRadius        = 12
	progressRadius    = 4
	hairlineBorder    = 1
	secondaryTintA    = 0.2
	heroBorderA       = 0.3
	cardBorderA       = 0.2
	navbarBorderA     = 0.3
	neutralBorderGray = 0.5
)

// Resolve returns the appearance for kind under theme t. Theme-dependent
// kinds use the dark pair only for state.Dark; every other theme value takes
// the light pair. Unknown kinds resolve to the zero Appearance.
func Resolve(kind Kind, t state.Theme, flags Flags) Appearance {
	dark := t == state.Dark
	switch kind {
	case NavButton:
		if flags.Active {
			return button(Accent, White, buttonRadius)
		}
		text := Black
		if dark {
			text = White
		}
		return button(Transparent, text, buttonRadius)
	case PrimaryButton:
		return button(Accent, White, buttonRadius)
	case SecondaryButton:
		a := button(Accent.WithAlpha(secondaryTintA), Accent, buttonRadius)
		a.BorderWidth = hairlineBorder
		a.BorderColor = Accent
		return a
	case ThemeToggleButton:
		return button(RGB(0.1, 0.1, 0.1), White, toggleRadius)
	case Card:
		return Appearance{
			Background:   pick(dark, RGBA(0.1, 0.1, 0.1, 0.5), RGBA(1, 1, 1, 0.8)),
			BorderRadius: cardRadius,
			BorderWidth:  hairlineBorder,
			BorderColor:  neutral(cardBorderA),
		}
	case Navbar:
		return Appearance{
			Background:   pick(dark, RGBA(0.1, 0.1, 0.1, 0.9), RGBA(0.95, 0.95, 0.95, 0.9)),
			BorderRadius: navbarRadius,
			BorderWidth:  hairlineBorder,
			BorderColor:  neutral(navbarBorderA),
		}
	case Hero:
		return Appearance{
			Background:   pick(dark, RGBA(0.05, 0.15, 0.25, 0.3), RGBA(0.9, 0.95, 1.0, 0.5)),
			BorderRadius: heroRadius,
			BorderWidth:  hairlineBorder,
			BorderColor:  Accent.WithAlpha(heroBorderA),
		}
	case TechPill:
		return Appearance{
			Background:   Accent.WithAlpha(secondaryTintA),
			BorderRadius: pillRadius,
			BorderWidth:  hairlineBorder,
			BorderColor:  Accent,
		}
	case ProgressTrack:
		return Appearance{
			Background:   pick(dark, RGBA(0.3, 0.3, 0.3, 0.5), RGBA(0.8, 0.8, 0.8, 0.5)),
			BorderRadius: progressRadius,
		}
	case ProgressFill:
		return Appearance{
			Background:   Accent,
			BorderRadius: progressRadius,
		}
	}
	return Appearance{}
}

func button(bg Color, text Color, radius float32) Appearance {
	return Appearance{Background: bg, Text: text, TextSet: true, BorderRadius: radius}
}

func neutral(alpha float32) Color {
	return RGBA(neutralBorderGray, neutralBorderGray, neutralBorderGray, alpha)
}

func pick(dark bool, darkColor Color, lightColor Color) Color {
	if dark {
		return darkColor
	}
	return lightColor
}
