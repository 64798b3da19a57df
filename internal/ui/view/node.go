// Package view composes the immutable node tree a host draws. Every function
// here is pure: the tree depends only on the AppState and the profile content
// passed in.
package view

import (
	"portfolio/internal/ui/state"
	"portfolio/internal/ui/theme"
)

type NodeKind int

const (
	KindColumn NodeKind = iota + 1
	KindRow
	KindText
	KindButton
	KindBox
	KindSpace
	KindScroll
)

func (k NodeKind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindRow:
		return "row"
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindBox:
		return "box"
	case KindSpace:
		return "space"
	case KindScroll:
		return "scroll"
	}
	return "unknown"
}

type LengthMode int

const (
	Shrink LengthMode = iota
	Fill
	Fixed
)

// Length is a size along one axis in layout units.
type Length struct {
	Mode  LengthMode
	Units int
}

var (
	ShrinkLength = Length{Mode: Shrink}
	FillLength   = Length{Mode: Fill}
)

func FixedLength(units int) Length {
	return Length{Mode: Fixed, Units: max(units, 0)}
}

type Align int

const (
	AlignStart Align = iota
	AlignCenter
)

type Padding struct {
	Top, Right, Bottom, Left int
}

func Pad(all int) Padding {
	return Padding{Top: all, Right: all, Bottom: all, Left: all}
}

// PadXY pads vertical then horizontal, like CSS shorthand.
func PadXY(vertical, horizontal int) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Node is one element of the view tree. Which fields are meaningful depends
// on Kind: Text and TextSize for text and buttons, Style and Look for boxes
// and buttons, OnPress for buttons, Children for containers. A zero Color
// means the text inherits the palette text color.
type Node struct {
	ID       string
	Kind     NodeKind
	Text     string
	TextSize int
	Color    theme.Color
	Wrap     bool
	Align    Align
	Spacing  int
	Padding  Padding
	Width    Length
	Height   Length
	Style    theme.Kind
	Look     theme.Appearance
	Active   bool
	OnPress  state.Message
	Children []Node
}

func Column(spacing int, align Align, children ...Node) Node {
	return Node{Kind: KindColumn, Spacing: spacing, Align: align, Children: children}
}

func Row(spacing int, align Align, children ...Node) Node {
	return Node{Kind: KindRow, Spacing: spacing, Align: align, Children: children}
}

func Text(value string, size int) Node {
	return Node{Kind: KindText, Text: value, TextSize: size}
}

// Button resolves its appearance at construction so the tree carries the
// final look for the current theme.
func Button(id string, label string, size int, kind theme.Kind, t state.Theme, active bool, onPress state.Message) Node {
	return Node{
		ID:       id,
		Kind:     KindButton,
		Text:     label,
		TextSize: size,
		Style:    kind,
		Look:     theme.Resolve(kind, t, theme.Flags{Active: active}),
		Active:   active,
		OnPress:  onPress,
	}
}

func Box(kind theme.Kind, t state.Theme, padding Padding, children ...Node) Node {
	return Node{
		Kind:     KindBox,
		Style:    kind,
		Look:     theme.Resolve(kind, t, theme.Flags{}),
		Padding:  padding,
		Children: children,
	}
}

func SpaceW(units int) Node {
	return Node{Kind: KindSpace, Width: FixedLength(units)}
}

func SpaceH(units int) Node {
	return Node{Kind: KindSpace, Height: FixedLength(units)}
}

// SpaceFill expands horizontally to push its siblings apart.
func SpaceFill() Node {
	return Node{Kind: KindSpace, Width: FillLength}
}

func Scroll(child Node) Node {
	return Node{Kind: KindScroll, Width: FillLength, Height: FillLength, Children: []Node{child}}
}

func (n Node) WithID(id string) Node {
	n.ID = id
	return n
}

func (n Node) WithColor(c theme.Color) Node {
	n.Color = c
	return n
}

func (n Node) WithWrap() Node {
	n.Wrap = true
	return n
}

func (n Node) WithAlign(a Align) Node {
	n.Align = a
	return n
}

func (n Node) WithPadding(p Padding) Node {
	n.Padding = p
	return n
}

func (n Node) WithWidth(l Length) Node {
	n.Width = l
	return n
}

func (n Node) WithHeight(l Length) Node {
	n.Height = l
	return n
}
