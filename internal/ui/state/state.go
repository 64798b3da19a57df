package state

import "fmt"

type Section int

const (
	Home Section = iota
	About
	Skills
	Projects
	Contact
)

var sectionOrder = []Section{Home, About, Skills, Projects, Contact}

// Sections returns every section in navbar order.
func Sections() []Section {
	return append([]Section(nil), sectionOrder...)
}

func (s Section) Valid() bool {
	return s >= Home && s <= Contact
}

func (s Section) String() string {
	switch s {
	case Home:
		return "Home"
	case About:
		return "About"
	case Skills:
		return "Skills"
	case Projects:
		return "Projects"
	case Contact:
		return "Contact"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	switch t {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// AppState is the whole mutable state of the viewer. It is a value; Update
// returns a new one instead of mutating.
type AppState struct {
	Section Section
	Theme   Theme
}

func Initial() AppState {
	return AppState{Section: Home, Theme: Dark}
}
