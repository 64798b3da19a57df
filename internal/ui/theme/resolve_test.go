package theme

import (
	"testing"

	"portfolio/internal/ui/state"
)

var allThemes = []state.Theme{state.Light, state.Dark}

func TestResolve_IsReferentiallyTransparent(t *testing.T) {
	for _, kind := range Kinds() {
		for _, th := range allThemes {
			for _, active := range []bool{false, true} {
				flags := Flags{Active: active}
				first := Resolve(kind, th, flags)
				second := Resolve(kind, th, flags)
				if first != second {
					t.Fatalf("Resolve(%v, %v, %+v) not stable: %+v vs %+v", kind, th, flags, first, second)
				}
			}
		}
	}
}

func TestResolve_EveryKindHasAppearance(t *testing.T) {
	for _, kind := range Kinds() {
		for _, th := range allThemes {
			got := Resolve(kind, th, Flags{})
			if got == (Appearance{}) {
				t.Fatalf("Resolve(%v, %v) returned zero appearance", kind, th)
			}
			if got.BorderRadius <= 0 {
				t.Fatalf("Resolve(%v, %v).BorderRadius = %v, want > 0", kind, th, got.BorderRadius)
			}
		}
	}
	if got := Resolve(Kind(0), state.Dark, Flags{}); got != (Appearance{}) {
		t.Fatalf("Resolve(unknown) = %+v, want zero", got)
	}
}

func TestResolve_NavButton(t *testing.T) {
	tests := []struct {
		name   string
		theme  state.Theme
		active bool
		bg     Color
		text   Color
	}{
		{name: "active dark", theme: state.Dark, active: true, bg: Accent, text: White},
		{name: "active light", theme: state.Light, active: true, bg: Accent, text: White},
		{name: "inactive dark", theme: state.Dark, active: false, bg: Transparent, text: White},
		{name: "inactive light", theme: state.Light, active: false, bg: Transparent, text: Black},
		{name: "inactive unknown theme uses light text", theme: state.Theme(9), active: false, bg: Transparent, text: Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(NavButton, tt.theme, Flags{Active: tt.active})
			if got.Background != tt.bg || got.Text != tt.text || !got.TextSet {
				t.Fatalf("Resolve(NavButton) = %+v, want bg %v text %v", got, tt.bg, tt.text)
			}
			if got.BorderRadius != buttonRadius {
				t.Fatalf("BorderRadius = %v, want %v", got.BorderRadius, buttonRadius)
			}
		})
	}
}

func TestResolve_ThemeIndependentKinds(t *testing.T) {
	for _, kind := range []Kind{PrimaryButton, SecondaryButton, ThemeToggleButton, TechPill, ProgressFill} {
		light := Resolve(kind, state.Light, Flags{})
		dark := Resolve(kind, state.Dark, Flags{})
		if light != dark {
			t.Fatalf("Resolve(%v) differs by theme: light %+v dark %+v", kind, light, dark)
		}
		if flagged := Resolve(kind, state.Dark, Flags{Active: true}); flagged != dark {
			t.Fatalf("Resolve(%v) reads Active flag: %+v", kind, flagged)
		}
	}
}

func TestResolve_ThemeDependentBackgrounds(t *testing.T) {
	tests := []struct {
		kind  Kind
		dark  Color
		light Color
	}{
		{kind: Card, dark: RGBA(0.1, 0.1, 0.1, 0.5), light: RGBA(1, 1, 1, 0.8)},
		{kind: Navbar, dark: RGBA(0.1, 0.1, 0.1, 0.9), light: RGBA(0.95, 0.95, 0.95, 0.9)},
		{kind: Hero, dark: RGBA(0.05, 0.15, 0.25, 0.3), light: RGBA(0.9, 0.95, 1.0, 0.5)},
		{kind: ProgressTrack, dark: RGBA(0.3, 0.3, 0.3, 0.5), light: RGBA(0.8, 0.8, 0.8, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := Resolve(tt.kind, state.Dark, Flags{}).Background; got != tt.dark {
				t.Fatalf("dark background = %v, want %v", got, tt.dark)
			}
			if got := Resolve(tt.kind, state.Light, Flags{}).Background; got != tt.light {
				t.Fatalf("light background = %v, want %v", got, tt.light)
			}
			if got := Resolve(tt.kind, state.Dark, Flags{}).TextSet; got {
				t.Fatalf("container %v must inherit text color", tt.kind)
			}
		})
	}
}

func TestResolve_SecondaryButtonHasAccentBorder(t *testing.T) {
	got := Resolve(SecondaryButton, state.Dark, Flags{})
	if got.BorderWidth != 1 || got.BorderColor != Accent {
		t.Fatalf("SecondaryButton border = %v %v, want 1 %v", got.BorderWidth, got.BorderColor, Accent)
	}
	if got.Background != Accent.WithAlpha(0.2) || got.Text != Accent {
		t.Fatalf("SecondaryButton = %+v", got)
	}
}

func TestColor_NRGBAAndOver(t *testing.T) {
	if got := Accent.NRGBA(); got.R != 51 || got.G != 153 || got.B != 255 || got.A != 255 {
		t.Fatalf("Accent.NRGBA() = %+v", got)
	}
	backdrop := RGB(0, 0, 0)
	if got := RGBA(1, 1, 1, 0.5).Over(backdrop); got != RGB(0.5, 0.5, 0.5) {
		t.Fatalf("Over() = %v, want mid gray", got)
	}
	if got := Transparent.Over(White); got != White {
		t.Fatalf("Transparent.Over(White) = %v, want white", got)
	}
}
