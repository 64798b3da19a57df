package loop

import (
	"bytes"
	"strings"
	"testing"

	"portfolio/internal/logging"
	"portfolio/internal/profile"
	"portfolio/internal/ui/state"
	"portfolio/internal/ui/theme"
	"portfolio/internal/ui/view"
)

func newTestLoop(t *testing.T) (*Loop, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(profile.MustDefault(), logging.NewWriter(&buf, true)), &buf
}

func projectCards(root view.Node) []view.Node {
	var cards []view.Node
	view.Walk(root, func(n view.Node) bool {
		if n.Kind == view.KindBox && n.Style == theme.Card && strings.HasPrefix(n.ID, "project-") {
			cards = append(cards, n)
		}
		return true
	})
	return cards
}

func TestNew_RendersInitialState(t *testing.T) {
	l, _ := newTestLoop(t)
	if l.State() != state.Initial() {
		t.Fatalf("State() = %v, want %v", l.State(), state.Initial())
	}
	if _, ok := view.Find(l.View(), view.IDHero); !ok {
		t.Fatalf("initial view has no hero")
	}
}

func TestDispatch_NavigateAndToggleScenario(t *testing.T) {
	l, _ := newTestLoop(t)

	tree := l.Dispatch(state.NavigateTo{Section: state.Projects})
	if got := l.State(); got != (state.AppState{Section: state.Projects, Theme: state.Dark}) {
		t.Fatalf("after navigate State() = %v", got)
	}
	cards := projectCards(tree)
	if len(cards) != 3 {
		t.Fatalf("project cards = %d, want 3", len(cards))
	}
	if _, ok := view.Find(tree, view.IDHero); ok {
		t.Fatalf("projects view still contains home content")
	}
	darkCard := cards[0].Look.Background

	tree = l.Dispatch(state.ToggleTheme{})
	if got := l.State(); got != (state.AppState{Section: state.Projects, Theme: state.Light}) {
		t.Fatalf("after first toggle State() = %v", got)
	}
	lightCard := projectCards(tree)[0].Look.Background
	if lightCard == darkCard {
		t.Fatalf("card background did not change with theme")
	}
	if want := theme.Resolve(theme.Card, state.Light, theme.Flags{}).Background; lightCard != want {
		t.Fatalf("light card background = %v, want %v", lightCard, want)
	}

	tree = l.Dispatch(state.ToggleTheme{})
	if got := l.State(); got != (state.AppState{Section: state.Projects, Theme: state.Dark}) {
		t.Fatalf("after second toggle State() = %v", got)
	}
	if got := projectCards(tree)[0].Look.Background; got != darkCard {
		t.Fatalf("card background = %v, want %v", got, darkCard)
	}
}

func TestDispatch_ReturnsCurrentTree(t *testing.T) {
	l, _ := newTestLoop(t)
	tree := l.Dispatch(state.NavigateTo{Section: state.Contact})
	if _, ok := view.Find(l.View(), view.SectionID(state.Contact)); !ok {
		t.Fatalf("View() does not show Contact")
	}
	if _, ok := view.Find(tree, view.SectionID(state.Contact)); !ok {
		t.Fatalf("Dispatch() tree does not show Contact")
	}
}

func TestDispatch_LogsEachMessage(t *testing.T) {
	l, buf := newTestLoop(t)
	l.Dispatch(state.ToggleTheme{})
	l.Dispatch(nil)

	out := buf.String()
	for _, want := range []string{
		"dispatch message=toggle-theme section=Home theme=Light changed=true",
		"dispatch message=<nil> section=Home theme=Light changed=false",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestSubscribe_NotifiesInOrderUntilRemoved(t *testing.T) {
	l, _ := newTestLoop(t)

	var calls []string
	removeFirst := l.Subscribe(func(s state.AppState, _ view.Node) {
		calls = append(calls, "first:"+s.Section.String())
	})
	l.Subscribe(func(s state.AppState, tree view.Node) {
		if _, ok := view.Find(tree, view.SectionID(s.Section)); !ok {
			t.Errorf("subscriber tree does not match state %v", s)
		}
		calls = append(calls, "second:"+s.Section.String())
	})

	l.Dispatch(state.NavigateTo{Section: state.Skills})
	removeFirst()
	l.Dispatch(state.NavigateTo{Section: state.About})

	if got, want := strings.Join(calls, ","), "first:Skills,second:Skills,second:About"; got != want {
		t.Fatalf("calls = %s, want %s", got, want)
	}
}
