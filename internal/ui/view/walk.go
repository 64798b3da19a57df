package view

import "portfolio/internal/ui/state"

// Action is a pressable node and the message it dispatches.
type Action struct {
	ID      string
	Label   string
	Message state.Message
}

// Walk visits n and its descendants depth-first, parents before children.
// It stops as soon as fn returns false and reports whether it ran to the end.
func Walk(n Node, fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Actions lists every button with a message, in tree order.
func Actions(n Node) []Action {
	var out []Action
	Walk(n, func(node Node) bool {
		if node.Kind == KindButton && node.OnPress != nil {
			out = append(out, Action{ID: node.ID, Label: node.Text, Message: node.OnPress})
		}
		return true
	})
	return out
}

func Find(n Node, id string) (Node, bool) {
	var found Node
	ok := false
	Walk(n, func(node Node) bool {
		if node.ID == id {
			found = node
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Texts collects the text and button labels under n in tree order.
func Texts(n Node) []string {
	var out []string
	Walk(n, func(node Node) bool {
		if (node.Kind == KindText || node.Kind == KindButton) && node.Text != "" {
			out = append(out, node.Text)
		}
		return true
	})
	return out
}
