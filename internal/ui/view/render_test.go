package view

import (
	"slices"
	"strings"
	"testing"

	"portfolio/internal/profile"
	"portfolio/internal/ui/state"
	"portfolio/internal/ui/theme"
)

func testProfile(t *testing.T) profile.Profile {
	t.Helper()
	p, err := profile.Default()
	if err != nil {
		t.Fatalf("profile.Default() error = %v", err)
	}
	return p
}

func TestFillWidth(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{level: 0, want: 0},
		{level: 50, want: 150},
		{level: 100, want: 300},
		{level: 33, want: 99},
		{level: 1, want: 3},
		{level: 85, want: 255},
		{level: -20, want: 0},
		{level: 250, want: 300},
	}
	for _, tt := range tests {
		if got := FillWidth(tt.level); got != tt.want {
			t.Fatalf("FillWidth(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestSkillBar_Layout(t *testing.T) {
	bar := SkillBar(state.Dark, "Rust", 33)
	if bar.ID != "skill-rust" {
		t.Fatalf("ID = %q", bar.ID)
	}
	if len(bar.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(bar.Children))
	}
	header, track := bar.Children[0], bar.Children[2]
	if got := Texts(header); !slices.Equal(got, []string{"Rust", "33%"}) {
		t.Fatalf("header texts = %v", got)
	}
	if track.Style != theme.ProgressTrack || track.Width != FixedLength(SkillTrackWidth) || track.Height != FixedLength(8) {
		t.Fatalf("track = %+v", track)
	}
	fill := track.Children[0]
	if fill.Style != theme.ProgressFill || fill.Width != FixedLength(99) {
		t.Fatalf("fill = %+v", fill)
	}
}

func TestSkillBar_ClampsLabel(t *testing.T) {
	bar := SkillBar(state.Light, "Overflow", 140)
	if got := Texts(bar); !slices.Equal(got, []string{"Overflow", "100%"}) {
		t.Fatalf("texts = %v", got)
	}
}

func TestNavbar_ExactlyOneActiveButton(t *testing.T) {
	for _, th := range []state.Theme{state.Light, state.Dark} {
		for _, section := range state.Sections() {
			s := state.AppState{Section: section, Theme: th}
			bar := Navbar(s)

			var active []string
			navCount := 0
			Walk(bar, func(n Node) bool {
				if n.Kind == KindButton && n.Style == theme.NavButton {
					navCount++
					if n.Active {
						active = append(active, n.ID)
					}
				}
				return true
			})
			if navCount != len(state.Sections()) {
				t.Fatalf("nav buttons = %d, want %d", navCount, len(state.Sections()))
			}
			if len(active) != 1 || active[0] != NavID(section) {
				t.Fatalf("Navbar(%v) active = %v, want [%s]", s, active, NavID(section))
			}
		}
	}
}

func TestNavbar_ButtonOrderAndMessages(t *testing.T) {
	actions := Actions(Navbar(state.Initial()))
	if len(actions) != len(state.Sections())+1 {
		t.Fatalf("actions = %d, want %d", len(actions), len(state.Sections())+1)
	}
	for i, section := range state.Sections() {
		want := state.NavigateTo{Section: section}
		if actions[i].Message != want {
			t.Fatalf("actions[%d] = %#v, want %#v", i, actions[i].Message, want)
		}
		if actions[i].Label != NavLabel(section) {
			t.Fatalf("actions[%d].Label = %q", i, actions[i].Label)
		}
	}
	last := actions[len(actions)-1]
	if last.ID != IDThemeToggle || last.Message != (state.ToggleTheme{}) {
		t.Fatalf("last action = %+v, want theme toggle", last)
	}
}

func TestNavbar_ActiveButtonLook(t *testing.T) {
	bar := Navbar(state.AppState{Section: state.Skills, Theme: state.Light})
	active, ok := Find(bar, NavID(state.Skills))
	if !ok {
		t.Fatalf("skills button missing")
	}
	if active.Look.Background != theme.Accent || active.Look.Text != theme.White {
		t.Fatalf("active look = %+v", active.Look)
	}
	inactive, _ := Find(bar, NavID(state.Home))
	if inactive.Look.Background != theme.Transparent || inactive.Look.Text != theme.Black {
		t.Fatalf("inactive look = %+v", inactive.Look)
	}
}

func TestRender_EverySectionHasItsOwnBranch(t *testing.T) {
	p := testProfile(t)
	for _, section := range state.Sections() {
		root := Render(state.AppState{Section: section, Theme: state.Dark}, p)
		if root.ID != IDRoot || root.Width != FillLength || root.Height != FillLength {
			t.Fatalf("root = %+v", root)
		}
		for _, other := range state.Sections() {
			_, ok := Find(root, SectionID(other))
			if ok != (other == section) {
				t.Fatalf("Render(%v) has %s = %v", section, SectionID(other), ok)
			}
		}
	}
}

func TestSectionView_PanicsOnUnknownSection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("SectionView() did not panic for an unknown section")
		}
	}()
	SectionView(state.AppState{Section: state.Section(42)}, testProfile(t))
}

func TestRender_ProjectsShowsDeclaredCards(t *testing.T) {
	p := testProfile(t)
	root := Render(state.AppState{Section: state.Projects, Theme: state.Dark}, p)

	var cards []Node
	Walk(root, func(n Node) bool {
		if n.Kind == KindBox && n.Style == theme.Card && strings.HasPrefix(n.ID, "project-") {
			cards = append(cards, n)
		}
		return true
	})
	if len(cards) != 3 {
		t.Fatalf("project cards = %d, want 3", len(cards))
	}
	for i, project := range p.Projects {
		texts := Texts(cards[i])
		if texts[0] != project.Title {
			t.Fatalf("card %d title = %q, want %q", i, texts[0], project.Title)
		}
		for _, tag := range project.Tags {
			if !slices.Contains(texts, tag) {
				t.Fatalf("card %d missing tag %q in %v", i, tag, texts)
			}
		}
	}
	if _, ok := Find(root, IDHero); ok {
		t.Fatalf("Projects view contains the home hero")
	}
	if slices.Contains(Texts(root), "View Projects") {
		t.Fatalf("Projects view contains home-only buttons")
	}
}

func TestRender_CardBackgroundFollowsTheme(t *testing.T) {
	p := testProfile(t)
	for _, th := range []state.Theme{state.Light, state.Dark} {
		want := theme.Resolve(theme.Card, th, theme.Flags{}).Background
		root := Render(state.AppState{Section: state.Projects, Theme: th}, p)
		seen := 0
		Walk(root, func(n Node) bool {
			if n.Style == theme.Card {
				seen++
				if n.Look.Background != want {
					t.Fatalf("theme %v card background = %v, want %v", th, n.Look.Background, want)
				}
			}
			return true
		})
		if seen == 0 {
			t.Fatalf("no cards rendered for theme %v", th)
		}
	}
}

func TestRender_HomeButtonsNavigate(t *testing.T) {
	root := Render(state.Initial(), testProfile(t))
	tests := []struct {
		id   string
		kind theme.Kind
		want state.Message
	}{
		{id: IDViewProjects, kind: theme.PrimaryButton, want: state.NavigateTo{Section: state.Projects}},
		{id: IDGetInTouch, kind: theme.SecondaryButton, want: state.NavigateTo{Section: state.Contact}},
	}
	for _, tt := range tests {
		n, ok := Find(root, tt.id)
		if !ok {
			t.Fatalf("Find(%q) missing", tt.id)
		}
		if n.Style != tt.kind || n.OnPress != tt.want {
			t.Fatalf("%s = style %v msg %#v", tt.id, n.Style, n.OnPress)
		}
	}
}

func TestRender_SkillsAndContact(t *testing.T) {
	p := testProfile(t)
	skills := Render(state.AppState{Section: state.Skills, Theme: state.Light}, p)
	bars := 0
	Walk(skills, func(n Node) bool {
		if strings.HasPrefix(n.ID, "skill-") {
			bars++
		}
		return true
	})
	if bars != 8 {
		t.Fatalf("skill bars = %d, want 8", bars)
	}

	contact := Render(state.AppState{Section: state.Contact, Theme: state.Light}, p)
	texts := Texts(contact)
	for _, c := range p.Contacts {
		if !slices.Contains(texts, c.Icon) || !slices.Contains(texts, c.Text) {
			t.Fatalf("contact view missing %+v", c)
		}
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	p := testProfile(t)
	s := state.AppState{Section: state.About, Theme: state.Light}
	first := Texts(Render(s, p))
	second := Texts(Render(s, p))
	if !slices.Equal(first, second) {
		t.Fatalf("Render() differs between calls")
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Hyprland Config Manager":  "hyprland-config-manager",
		"Iced/GUI":                 "iced-gui",
		"john.developer@email.com": "john-developer-email-com",
		"  Trim  ":                 "trim",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Fatalf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
