package view

import (
	"fmt"
	"strings"
	"unicode"

	"portfolio/internal/ui/state"
	"portfolio/internal/ui/theme"
)

const (
	// SkillTrackWidth is the full width of a skill bar track.
	SkillTrackWidth  = 300
	skillTrackHeight = 8

	cardPadding   = 24
	navbarPadding = 16
	navSpacing    = 8
	navToggleGap  = 20
	navLabelSize  = 16
	toggleSize    = 20
	pillSpacing   = 8
	pillTextSize  = 12
	bodySize      = 14
)

const (
	IDThemeToggle = "theme-toggle"
	IDNavbar      = "navbar"
)

var navLabels = map[state.Section]string{
	state.Home:     "🏠 Home",
	state.About:    "👤 About",
	state.Skills:   "⚡ Skills",
	state.Projects: "💼 Projects",
	state.Contact:  "📞 Contact",
}

// NavID is the node ID of the navbar button for section s.
func NavID(s state.Section) string {
	return "nav-" + strings.ToLower(s.String())
}

func NavLabel(s state.Section) string {
	return navLabels[s]
}

func Navbar(s state.AppState) Node {
	sections := state.Sections()
	items := make([]Node, 0, len(sections)+2)
	for _, section := range sections {
		btn := Button(NavID(section), NavLabel(section), navLabelSize, theme.NavButton, s.Theme,
			section == s.Section, state.NavigateTo{Section: section})
		items = append(items, btn.WithPadding(PadXY(8, 16)))
	}
	items = append(items,
		SpaceW(navToggleGap),
		Button(IDThemeToggle, "🌙", toggleSize, theme.ThemeToggleButton, s.Theme, false, state.ToggleTheme{}).
			WithPadding(Pad(8)),
	)
	return Box(theme.Navbar, s.Theme, Pad(navbarPadding), Row(navSpacing, AlignCenter, items...)).WithID(IDNavbar)
}

func Card(t state.Theme, content Node) Node {
	return Box(theme.Card, t, Pad(cardPadding), content)
}

// FillWidth is the progress fill width for a skill level. Levels outside
// [0,100] are clamped; the division truncates.
func FillWidth(level int) int {
	return SkillTrackWidth * clampLevel(level) / 100
}

func clampLevel(level int) int {
	return min(max(level, 0), 100)
}

func SkillBar(t state.Theme, name string, level int) Node {
	level = clampLevel(level)
	fill := Box(theme.ProgressFill, t, Padding{}).
		WithWidth(FixedLength(FillWidth(level))).
		WithHeight(FixedLength(skillTrackHeight))
	track := Box(theme.ProgressTrack, t, Padding{}, fill).
		WithWidth(FixedLength(SkillTrackWidth)).
		WithHeight(FixedLength(skillTrackHeight))
	header := Row(0, AlignStart,
		Text(name, bodySize),
		SpaceFill(),
		Text(fmt.Sprintf("%d%%", level), bodySize),
	).WithWidth(FixedLength(SkillTrackWidth))
	return Column(0, AlignStart, header, SpaceH(4), track).WithID("skill-" + slug(name))
}

func ProjectCard(t state.Theme, title string, description string, tags []string) Node {
	pills := make([]Node, 0, len(tags))
	for _, tag := range tags {
		pills = append(pills, Box(theme.TechPill, t, PadXY(4, 8), Text(tag, pillTextSize)))
	}
	id := "project-" + slug(title)
	content := Column(0, AlignStart,
		Text(title, 20).WithColor(theme.Accent),
		SpaceH(8),
		Text(description, bodySize).WithWrap(),
		SpaceH(12),
		Row(pillSpacing, AlignCenter, pills...),
		SpaceH(16),
		Button(id+"-github", "View on GitHub", bodySize, theme.PrimaryButton, t, false,
			state.NavigateTo{Section: state.Projects}).WithPadding(PadXY(8, 16)),
	)
	return Card(t, content).WithID(id)
}

func ContactItem(icon string, text string) Node {
	return Row(0, AlignCenter,
		Text(icon, 20),
		SpaceW(12),
		Text(text, 16),
	).WithID("contact-" + slug(text))
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
