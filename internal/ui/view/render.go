package view

import (
	"fmt"

	"portfolio/internal/profile"
	"portfolio/internal/ui/state"
)

const (
	IDRoot    = "root"
	IDContent = "content"
	NavbarGap = 20
)

// Render builds the full tree for s: the navbar above a scrollable view of
// the current section.
func Render(s state.AppState, p profile.Profile) Node {
	return Column(0, AlignCenter,
		Navbar(s),
		SpaceH(NavbarGap),
		Scroll(SectionView(s, p)).WithID(IDContent),
	).WithWidth(FillLength).WithHeight(FillLength).WithID(IDRoot)
}

// SectionView has one branch per Section. A value outside the enumeration is
// a programming error; state.Update never produces one.
func SectionView(s state.AppState, p profile.Profile) Node {
	switch s.Section {
	case state.Home:
		return HomeView(s.Theme, p)
	case state.About:
		return AboutView(s.Theme, p)
	case state.Skills:
		return SkillsView(s.Theme, p)
	case state.Projects:
		return ProjectsView(s.Theme, p)
	case state.Contact:
		return ContactView(s.Theme, p)
	}
	panic(fmt.Sprintf("view: unknown section %v", s.Section))
}
