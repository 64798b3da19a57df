package state

// Message is a user intent consumed by Update. The set is closed: only the
// types in this package implement it.
type Message interface {
	isMessage()
}

type NavigateTo struct {
	Section Section
}

type ToggleTheme struct{}

func (NavigateTo) isMessage()  {}
func (ToggleTheme) isMessage() {}

func Update(s AppState, msg Message) AppState {
	switch msg := msg.(type) {
	case NavigateTo:
		if !msg.Section.Valid() {
			return s
		}
		s.Section = msg.Section
	case ToggleTheme:
		s.Theme = toggled(s.Theme)
	}
	return s
}

// toggled flips Light and Dark. Any other value normalizes to Dark.
func toggled(t Theme) Theme {
	switch t {
	case Light:
		return Dark
	case Dark:
		return Light
	}
	return Dark
}

// Describe renders a message for logs.
func Describe(msg Message) string {
	switch msg := msg.(type) {
	case NavigateTo:
		return "navigate:" + msg.Section.String()
	case ToggleTheme:
		return "toggle-theme"
	case nil:
		return "<nil>"
	}
	return "unknown"
}
