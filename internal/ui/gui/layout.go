//go:build !headless

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/layout"
)

// flowLayout stacks objects along one axis with an exact gap, unlike
// VBox/HBox which insert the theme padding. Objects flagged in grow share
// the leftover main-axis space; spacers do the same on a row.
type flowLayout struct {
	horizontal bool
	spacing    float32
	center     bool
	grow       []bool
}

func (l *flowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var main, cross float32
	visible := 0
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		visible++
		ms := o.MinSize()
		if l.horizontal {
			main += ms.Width
			cross = max(cross, ms.Height)
		} else {
			main += ms.Height
			cross = max(cross, ms.Width)
		}
	}
	if visible > 1 {
		main += l.spacing * float32(visible-1)
	}
	if l.horizontal {
		return fyne.NewSize(main, cross)
	}
	return fyne.NewSize(cross, main)
}

func (l *flowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	total := l.MinSize(objects)
	growers := 0
	for i, o := range objects {
		if o.Visible() && l.grows(i, o) {
			growers++
		}
	}
	var extra float32
	if growers > 0 {
		if l.horizontal {
			extra = max(size.Width-total.Width, 0) / float32(growers)
		} else {
			extra = max(size.Height-total.Height, 0) / float32(growers)
		}
	}

	var pos float32
	for i, o := range objects {
		if !o.Visible() {
			continue
		}
		ms := o.MinSize()
		if l.horizontal {
			w := ms.Width
			if l.grows(i, o) {
				w += extra
			}
			y := float32(0)
			if l.center {
				y = (size.Height - ms.Height) / 2
			}
			o.Move(fyne.NewPos(pos, y))
			o.Resize(fyne.NewSize(w, ms.Height))
			pos += w + l.spacing
			continue
		}
		h := ms.Height
		if l.grows(i, o) {
			h += extra
		}
		o.Move(fyne.NewPos(0, pos))
		o.Resize(fyne.NewSize(size.Width, h))
		pos += h + l.spacing
	}
}

func (l *flowLayout) grows(i int, o fyne.CanvasObject) bool {
	if i < len(l.grow) && l.grow[i] {
		return true
	}
	spacer, ok := o.(layout.SpacerObject)
	if !ok {
		return false
	}
	if l.horizontal {
		return spacer.ExpandHorizontal()
	}
	return spacer.ExpandVertical()
}

// fixedLayout pins its objects to a fixed size along the axes that have one
// and anchors them top-left, so a stretching parent does not widen them.
type fixedLayout struct {
	width, height float32
}

func (l *fixedLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var size fyne.Size
	for _, o := range objects {
		size = size.Max(o.MinSize())
	}
	if l.width > 0 {
		size.Width = l.width
	}
	if l.height > 0 {
		size.Height = l.height
	}
	return size
}

func (l *fixedLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	w, h := size.Width, size.Height
	if l.width > 0 {
		w = l.width
	}
	if l.height > 0 {
		h = l.height
	}
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(fyne.NewSize(w, h))
	}
}
