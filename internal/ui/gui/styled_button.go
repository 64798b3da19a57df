//go:build !headless

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	uitheme "portfolio/internal/ui/theme"
)

const hoverAlphaBoost = 0.15

// styledButton draws a resolved Appearance: a rounded, optionally stroked
// rectangle behind a single line of text.
type styledButton struct {
	widget.BaseWidget

	OnTapped func()

	look    uitheme.Appearance
	text    color.Color
	padding fyne.Size
	hovered bool

	bg    *canvas.Rectangle
	label *canvas.Text
}

func newStyledButton(label string, size float32, look uitheme.Appearance, text color.Color, padding fyne.Size, onTapped func()) *styledButton {
	b := &styledButton{
		OnTapped: onTapped,
		look:     look,
		text:     text,
		padding:  padding,
		bg:       canvas.NewRectangle(look.Background.NRGBA()),
		label:    canvas.NewText(label, text),
	}
	b.label.TextSize = size
	b.label.Alignment = fyne.TextAlignCenter
	b.paint()
	b.ExtendBaseWidget(b)
	return b
}

func (b *styledButton) paint() {
	fill := b.look.Background
	if b.hovered {
		fill = fill.WithAlpha(min(fill.A+hoverAlphaBoost, 1))
	}
	b.bg.FillColor = fill.NRGBA()
	b.bg.CornerRadius = b.look.BorderRadius
	b.bg.StrokeWidth = b.look.BorderWidth
	b.bg.StrokeColor = b.look.BorderColor.NRGBA()
	b.label.Color = b.text
}

func (b *styledButton) MinSize() fyne.Size {
	b.ExtendBaseWidget(b)
	return b.BaseWidget.MinSize()
}

func (b *styledButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

func (b *styledButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (b *styledButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

func (b *styledButton) MouseMoved(*desktop.MouseEvent) {}

func (b *styledButton) MouseOut() {
	b.hovered = false
	b.Refresh()
}

func (b *styledButton) CreateRenderer() fyne.WidgetRenderer {
	return &styledButtonRenderer{button: b, objs: []fyne.CanvasObject{b.bg, b.label}}
}

type styledButtonRenderer struct {
	button *styledButton
	objs   []fyne.CanvasObject
}

func (r *styledButtonRenderer) Layout(size fyne.Size) {
	r.button.bg.Resize(size)
	r.button.bg.Move(fyne.NewPos(0, 0))
	textSize := r.button.label.MinSize()
	r.button.label.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.button.label.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
}

func (r *styledButtonRenderer) MinSize() fyne.Size {
	text := r.button.label.MinSize()
	return fyne.NewSize(text.Width+2*r.button.padding.Width, text.Height+2*r.button.padding.Height)
}

func (r *styledButtonRenderer) Refresh() {
	b := r.button
	b.paint()
	r.Layout(b.Size())
	canvas.Refresh(b.bg)
	canvas.Refresh(b.label)
}

func (r *styledButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objs
}

func (r *styledButtonRenderer) Destroy() {}
