package view

import (
	"strings"

	"portfolio/internal/profile"
	"portfolio/internal/ui/state"
	"portfolio/internal/ui/theme"
)

const (
	headingSize    = 36
	subheadingSize = 20
	sectionPadding = 40
)

const (
	IDHero         = "hero"
	IDViewProjects = "home-view-projects"
	IDGetInTouch   = "home-get-in-touch"
)

// SectionID is the node ID of the content column for section s.
func SectionID(s state.Section) string {
	return "section-" + strings.ToLower(s.String())
}

func heading(title string) Node {
	return Text(title, headingSize).WithColor(theme.Accent)
}

func subheading(title string) Node {
	return Text(title, subheadingSize).WithColor(theme.Accent)
}

func sectionColumn(s state.Section, children ...Node) Node {
	return Column(0, AlignCenter, children...).
		WithPadding(Pad(sectionPadding)).
		WithWidth(FillLength).
		WithID(SectionID(s))
}

func HomeView(t state.Theme, p profile.Profile) Node {
	hero := Column(0, AlignCenter,
		Text(p.Avatar, 80),
		SpaceH(20),
		Text(p.Name, 48).WithColor(theme.Accent),
		SpaceH(10),
		Text(p.Headline, 24),
		SpaceH(20),
		Text(p.Tagline, 16).WithAlign(AlignCenter),
		SpaceH(30),
		Row(0, AlignCenter,
			Button(IDViewProjects, "View Projects", 16, theme.PrimaryButton, t, false,
				state.NavigateTo{Section: state.Projects}).WithPadding(PadXY(12, 24)),
			SpaceW(16),
			Button(IDGetInTouch, "Get In Touch", 16, theme.SecondaryButton, t, false,
				state.NavigateTo{Section: state.Contact}).WithPadding(PadXY(12, 24)),
		),
	).WithPadding(Pad(sectionPadding))

	box := Box(theme.Hero, t, Padding{}, hero).
		WithAlign(AlignCenter).
		WithWidth(FillLength).
		WithID(IDHero)
	return Column(0, AlignCenter, box).WithWidth(FillLength).WithID(SectionID(state.Home))
}

func AboutView(t state.Theme, p profile.Profile) Node {
	body := make([]Node, 0, 2*len(p.About)+3+len(p.QuickFacts))
	for i, paragraph := range p.About {
		if i > 0 {
			body = append(body, SpaceH(16))
		}
		body = append(body, Text(paragraph, 16).WithWrap())
	}
	body = append(body, SpaceH(20), subheading("Quick Facts"), SpaceH(10))
	for _, fact := range p.QuickFacts {
		body = append(body, Text(fact, bodySize))
	}

	return sectionColumn(state.About,
		heading("About Me"),
		SpaceH(20),
		Card(t, Column(4, AlignStart, body...)),
	)
}

func SkillsView(t state.Theme, p profile.Profile) Node {
	cards := make([]Node, 0, 2*len(p.SkillGroups))
	for i, group := range p.SkillGroups {
		if i > 0 {
			cards = append(cards, SpaceW(20))
		}
		items := make([]Node, 0, len(group.Skills)+2)
		items = append(items, subheading(group.Title), SpaceH(12))
		for _, skill := range group.Skills {
			items = append(items, SkillBar(t, skill.Name, skill.Level))
		}
		cards = append(cards, Card(t, Column(8, AlignStart, items...)))
	}

	return sectionColumn(state.Skills,
		heading("Skills & Technologies"),
		SpaceH(30),
		Row(0, AlignStart, cards...),
	)
}

func ProjectsView(t state.Theme, p profile.Profile) Node {
	cards := make([]Node, 0, 2*len(p.Projects))
	for i, project := range p.Projects {
		if i > 0 {
			cards = append(cards, SpaceH(20))
		}
		cards = append(cards, ProjectCard(t, project.Title, project.Description, project.Tags))
	}

	return sectionColumn(state.Projects,
		heading("Featured Projects"),
		SpaceH(30),
		Column(0, AlignStart, cards...),
	)
}

func ContactView(t state.Theme, p profile.Profile) Node {
	items := make([]Node, 0, len(p.Contacts))
	for _, c := range p.Contacts {
		items = append(items, ContactItem(c.Icon, c.Text))
	}

	return sectionColumn(state.Contact,
		heading("Let's Connect"),
		SpaceH(30),
		Card(t, Column(0, AlignCenter,
			Text(p.ContactIntro, 18).WithAlign(AlignCenter),
			SpaceH(30),
			Column(12, AlignStart, items...),
		)),
	)
}
