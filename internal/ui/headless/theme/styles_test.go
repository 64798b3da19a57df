package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	uitheme "portfolio/internal/ui/theme"
)

func TestBlend(t *testing.T) {
	black := colorful.Color{}
	tests := []struct {
		name     string
		c        uitheme.Color
		backdrop colorful.Color
		want     string
	}{
		{name: "opaque wins", c: uitheme.Accent, backdrop: black, want: "#3399ff"},
		{name: "transparent shows backdrop", c: uitheme.Transparent, backdrop: colorful.Color{R: 1, G: 1, B: 1}, want: "#ffffff"},
		{name: "half white over black", c: uitheme.White.WithAlpha(0.5), backdrop: black, want: "#808080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.c, tt.backdrop).Hex(); got != tt.want {
				t.Fatalf("Blend() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLip(t *testing.T) {
	if got := Lip(Opaque(uitheme.Black)); string(got) != "#000000" {
		t.Fatalf("Lip(black) = %q", got)
	}
}
