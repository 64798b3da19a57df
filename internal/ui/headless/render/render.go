// Package render draws a view.Node tree as styled terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/lucasb-eyer/go-colorful"

	hstyles "portfolio/internal/ui/headless/theme"
	uitheme "portfolio/internal/ui/theme"
	"portfolio/internal/ui/view"
)

// A terminal cell is roughly 10 layout units wide and 20 tall.
const (
	UnitsPerCell = 10
	UnitsPerRow  = 20
)

const (
	wrapWidth = 64
	boldSize  = 18
)

type Options struct {
	Palette uitheme.Palette
	// Focus is the ID of the button drawn with the focus border.
	Focus string
	// Width is the number of cells available; 0 leaves the tree unbounded.
	Width int
}

func Cells(units int) int {
	return max(units, 0) / UnitsPerCell
}

func Rows(units int) int {
	return max(units, 0) / UnitsPerRow
}

// Tree renders n. Buttons with an ID are wrapped in a bubblezone mark under
// that ID, so the caller must zone.Scan the final frame.
func Tree(n view.Node, opts Options) string {
	p := painter{focus: opts.Focus}
	return p.draw(n, surface{
		bg:    hstyles.Opaque(opts.Palette.Background),
		text:  hstyles.Opaque(opts.Palette.Text),
		width: max(opts.Width, 0),
	})
}

// surface is what a node is drawn on: the flattened background below it,
// the inherited text color and the width it may use.
type surface struct {
	bg     colorful.Color
	text   colorful.Color
	width  int
	center bool
}

func (s surface) style() lipgloss.Style {
	return lipgloss.NewStyle().Background(hstyles.Lip(s.bg)).Foreground(hstyles.Lip(s.text))
}

type painter struct {
	focus string
}

func (p painter) draw(n view.Node, s surface) string {
	if n.Width.Mode == view.Fixed {
		s.width = Cells(n.Width.Units)
	}
	switch n.Kind {
	case view.KindColumn, view.KindScroll:
		return p.column(n, s)
	case view.KindRow:
		return p.row(n, s)
	case view.KindText:
		return p.text(n, s)
	case view.KindButton:
		return p.button(n, s)
	case view.KindBox:
		return p.box(n, s)
	case view.KindSpace:
		return p.space(n, s)
	}
	return ""
}

func (p painter) column(n view.Node, s surface) string {
	top, right, bottom, left := frame(n.Padding)
	inner := s
	inner.center = n.Align == view.AlignCenter
	if inner.width > 0 {
		inner.width = max(inner.width-left-right, 1)
	}

	gap := Rows(n.Spacing)
	var blocks []string
	for _, child := range n.Children {
		if child.Kind == view.KindSpace && Rows(child.Height.Units) == 0 {
			continue
		}
		if len(blocks) > 0 && gap > 0 {
			blocks = append(blocks, emptyLines(gap))
		}
		blocks = append(blocks, p.draw(child, inner))
	}

	width := 0
	for _, block := range blocks {
		width = max(width, lipgloss.Width(block))
	}
	if stretches(n) && inner.width > 0 {
		width = max(width, inner.width)
	}
	pos := lipgloss.Left
	if inner.center {
		pos = lipgloss.Center
	}
	for i, block := range blocks {
		blocks[i] = s.style().Width(width).Align(pos).Render(block)
	}
	return s.style().Padding(top, right, bottom, left).Render(strings.Join(blocks, "\n"))
}

func (p painter) row(n view.Node, s surface) string {
	top, right, bottom, left := frame(n.Padding)
	inner := s
	inner.center = false
	if inner.width > 0 {
		inner.width = max(inner.width-left-right, 1)
	}

	parts := make([]string, 0, len(n.Children))
	var fills []int
	used := 0
	for _, child := range n.Children {
		var part string
		switch {
		case child.Kind == view.KindSpace && child.Width.Mode == view.Fill:
			fills = append(fills, len(parts))
		case child.Kind == view.KindSpace:
			w := Cells(child.Width.Units)
			if w == 0 {
				continue
			}
			part = s.style().Width(w).Render("")
		default:
			part = p.draw(child, inner)
		}
		used += lipgloss.Width(part)
		parts = append(parts, part)
	}

	gap := Cells(n.Spacing)
	used += gap * max(len(parts)-1, 0)
	if len(fills) > 0 {
		slack := len(fills)
		if stretches(n) && inner.width > 0 {
			slack = max(inner.width-used, 0)
		}
		share := slack / len(fills)
		for i, idx := range fills {
			w := share
			if i == len(fills)-1 {
				w = slack - share*(len(fills)-1)
			}
			parts[idx] = s.style().Width(w).Render("")
		}
	}

	height := 0
	for _, part := range parts {
		height = max(height, lipgloss.Height(part))
	}
	vpos := lipgloss.Top
	if n.Align == view.AlignCenter {
		vpos = lipgloss.Center
	}
	cells := make([]string, 0, 2*len(parts))
	for i, part := range parts {
		if i > 0 && gap > 0 {
			cells = append(cells, s.style().Width(gap).Height(height).Render(""))
		}
		cells = append(cells, s.style().Width(lipgloss.Width(part)).Height(height).AlignVertical(vpos).Render(part))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return s.style().Padding(top, right, bottom, left).Render(out)
}

func (p painter) text(n view.Node, s surface) string {
	fg := s.text
	if !n.Color.IsTransparent() {
		fg = hstyles.Blend(n.Color, s.bg)
	}
	st := lipgloss.NewStyle().
		Foreground(hstyles.Lip(fg)).
		Background(hstyles.Lip(s.bg)).
		Bold(n.TextSize >= boldSize)
	if n.Align == view.AlignCenter || s.center {
		st = st.Align(lipgloss.Center)
	}
	if n.Wrap {
		w := wrapWidth
		if s.width > 0 {
			w = min(w, s.width)
		}
		return st.Width(w).Render(n.Text)
	}
	lines := strings.Split(n.Text, "\n")
	if s.width > 0 {
		for i, line := range lines {
			lines[i] = TruncateDisplayWidth(line, s.width)
		}
	}
	return st.Render(strings.Join(lines, "\n"))
}

// button always carries a border so focus changes never shift the layout.
func (p painter) button(n view.Node, s surface) string {
	look := n.Look
	bg := hstyles.Blend(look.Background, s.bg)
	fg := s.text
	if look.TextSet {
		fg = hstyles.Blend(look.Text, bg)
	}
	padX := max(Cells(n.Padding.Left), 1)
	st := lipgloss.NewStyle().
		Foreground(hstyles.Lip(fg)).
		Background(hstyles.Lip(bg)).
		Bold(n.Active).
		Padding(0, padX).
		BorderBackground(hstyles.Lip(s.bg))
	switch {
	case n.ID != "" && n.ID == p.focus:
		st = st.Border(hstyles.FocusBorder).BorderForeground(hstyles.Lip(s.text))
	case look.BorderWidth > 0:
		st = st.Border(hstyles.ButtonBorder).BorderForeground(hstyles.Lip(hstyles.Blend(look.BorderColor, s.bg)))
	default:
		st = st.Border(lipgloss.HiddenBorder())
	}
	label := n.Text
	if s.width > 0 {
		label = TruncateDisplayWidth(label, max(s.width-2*padX-2, 1))
	}
	out := st.Render(label)
	if n.ID == "" {
		return out
	}
	return zone.Mark(n.ID, out)
}

func (p painter) box(n view.Node, s surface) string {
	look := n.Look
	bg := hstyles.Blend(look.Background, s.bg)
	inner := surface{bg: bg, text: s.text, width: s.width}
	if look.TextSet {
		inner.text = hstyles.Blend(look.Text, bg)
	}
	top, _, bottom, _ := frame(n.Padding)
	border := 0
	if look.BorderWidth > 0 {
		border = 1
	}
	if inner.width > 0 {
		inner.width = max(inner.width-2*border, 1)
	}

	content := p.column(view.Node{
		Kind:     view.KindColumn,
		Align:    n.Align,
		Width:    n.Width,
		Padding:  n.Padding,
		Children: n.Children,
	}, inner)

	st := lipgloss.NewStyle().Background(hstyles.Lip(bg)).Foreground(hstyles.Lip(inner.text))
	if stretches(n) && s.width > 0 {
		st = st.Width(s.width - 2*border)
	}
	if n.Height.Mode == view.Fixed {
		st = st.Height(max(Rows(n.Height.Units), 1) + top + bottom)
	}
	if border > 0 {
		st = st.Border(lipgloss.RoundedBorder()).
			BorderForeground(hstyles.Lip(hstyles.Blend(look.BorderColor, s.bg))).
			BorderBackground(hstyles.Lip(s.bg))
	}
	return st.Render(content)
}

func (p painter) space(n view.Node, s surface) string {
	st := s.style()
	if n.Width.Mode == view.Fixed {
		st = st.Width(Cells(n.Width.Units))
	}
	if rows := Rows(n.Height.Units); rows > 0 {
		st = st.Height(rows)
	}
	return st.Render("")
}

// TruncateDisplayWidth cuts value to at most width cells, marking the cut
// with an ellipsis.
func TruncateDisplayWidth(value string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(value, width, "…")
}

func frame(p view.Padding) (top, right, bottom, left int) {
	return Rows(p.Top), Cells(p.Right), Rows(p.Bottom), Cells(p.Left)
}

func stretches(n view.Node) bool {
	return n.Width.Mode == view.Fill || n.Width.Mode == view.Fixed
}

func emptyLines(n int) string {
	return strings.Repeat("\n", max(n-1, 0))
}
