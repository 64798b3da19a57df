//go:build !headless

package gui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"portfolio/internal/ui/state"
	uitheme "portfolio/internal/ui/theme"
	"portfolio/internal/ui/view"
)

// wrapWidth bounds wrapped paragraphs so they do not collapse inside a
// centered column.
const wrapWidth = 640

// builder turns a view tree into fresh fyne objects. It is rebuilt for
// every render; nothing is reused between trees.
type builder struct {
	palette  uitheme.Palette
	dispatch func(state.Message)
}

func (b *builder) build(n view.Node) fyne.CanvasObject {
	obj := b.buildKind(n)
	if n.Width.Mode == view.Fixed || n.Height.Mode == view.Fixed {
		var w, h float32
		if n.Width.Mode == view.Fixed {
			w = float32(n.Width.Units)
		}
		if n.Height.Mode == view.Fixed {
			h = float32(n.Height.Units)
		}
		if n.Kind != view.KindSpace {
			return container.New(&fixedLayout{width: w, height: h}, obj)
		}
	}
	return obj
}

func (b *builder) buildKind(n view.Node) fyne.CanvasObject {
	switch n.Kind {
	case view.KindColumn:
		return b.buildFlow(n, false)
	case view.KindRow:
		return b.buildFlow(n, true)
	case view.KindText:
		return b.buildText(n)
	case view.KindButton:
		return b.buildButton(n)
	case view.KindBox:
		return b.buildBox(n)
	case view.KindSpace:
		return b.buildSpace(n)
	case view.KindScroll:
		if len(n.Children) == 0 {
			return container.NewVScroll(layout.NewSpacer())
		}
		return container.NewVScroll(b.build(n.Children[0]))
	}
	return layout.NewSpacer()
}

func (b *builder) buildFlow(n view.Node, horizontal bool) fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(n.Children))
	grow := make([]bool, 0, len(n.Children))
	for _, child := range n.Children {
		obj := b.build(child)
		if !horizontal && n.Align == view.AlignCenter && child.Width.Mode != view.Fill {
			obj = container.NewCenter(obj)
		}
		objects = append(objects, obj)
		if horizontal {
			grow = append(grow, child.Width.Mode == view.Fill)
		} else {
			grow = append(grow, child.Height.Mode == view.Fill)
		}
	}
	l := &flowLayout{
		horizontal: horizontal,
		spacing:    float32(n.Spacing),
		center:     n.Align == view.AlignCenter,
		grow:       grow,
	}
	return padded(container.New(l, objects...), n.Padding)
}

func (b *builder) textColor(c uitheme.Color) color.Color {
	if c == (uitheme.Color{}) {
		return b.palette.Text.NRGBA()
	}
	return c.NRGBA()
}

func (b *builder) buildText(n view.Node) fyne.CanvasObject {
	if n.Wrap {
		label := widget.NewLabel(n.Text)
		label.Wrapping = fyne.TextWrapWord
		return container.New(&fixedLayout{width: wrapWidth}, label)
	}
	align := fyne.TextAlignLeading
	if n.Align == view.AlignCenter {
		align = fyne.TextAlignCenter
	}
	lines := strings.Split(n.Text, "\n")
	objects := make([]fyne.CanvasObject, 0, len(lines))
	for _, line := range lines {
		text := canvas.NewText(line, b.textColor(n.Color))
		text.TextSize = float32(n.TextSize)
		text.Alignment = align
		objects = append(objects, text)
	}
	if len(objects) == 1 {
		return objects[0]
	}
	return container.New(&flowLayout{}, objects...)
}

func (b *builder) buildButton(n view.Node) fyne.CanvasObject {
	text := b.palette.Text.NRGBA()
	if n.Look.TextSet {
		text = n.Look.Text.NRGBA()
	}
	msg := n.OnPress
	padding := fyne.NewSize(float32(n.Padding.Left), float32(n.Padding.Top))
	return newStyledButton(n.Text, float32(n.TextSize), n.Look, text, padding, func() {
		if msg != nil && b.dispatch != nil {
			b.dispatch(msg)
		}
	})
}

func (b *builder) buildBox(n view.Node) fyne.CanvasObject {
	bg := canvas.NewRectangle(n.Look.Background.NRGBA())
	bg.CornerRadius = n.Look.BorderRadius
	bg.StrokeWidth = n.Look.BorderWidth
	bg.StrokeColor = n.Look.BorderColor.NRGBA()
	if len(n.Children) == 0 {
		return bg
	}

	children := make([]fyne.CanvasObject, 0, len(n.Children))
	for _, child := range n.Children {
		obj := b.build(child)
		if n.Align == view.AlignCenter {
			obj = container.NewCenter(obj)
		}
		children = append(children, obj)
	}
	content := container.New(&flowLayout{}, children...)
	return container.NewStack(bg, padded(content, n.Padding))
}

func (b *builder) buildSpace(n view.Node) fyne.CanvasObject {
	if n.Width.Mode == view.Fill || n.Height.Mode == view.Fill {
		return layout.NewSpacer()
	}
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(float32(n.Width.Units), float32(n.Height.Units)))
	return gap
}

func padded(obj fyne.CanvasObject, p view.Padding) fyne.CanvasObject {
	if p == (view.Padding{}) {
		return obj
	}
	return container.New(
		layout.NewCustomPaddedLayout(float32(p.Top), float32(p.Bottom), float32(p.Left), float32(p.Right)),
		obj,
	)
}
