package state

import "testing"

func TestInitial_StartsAtHomeDark(t *testing.T) {
	got := Initial()
	if got != (AppState{Section: Home, Theme: Dark}) {
		t.Fatalf("Initial() = %#v, want {Home Dark}", got)
	}
}

func TestUpdate_NavigateKeepsTheme(t *testing.T) {
	for _, theme := range []Theme{Light, Dark} {
		for _, section := range Sections() {
			start := AppState{Section: Home, Theme: theme}
			got := Update(start, NavigateTo{Section: section})
			if got.Section != section || got.Theme != theme {
				t.Fatalf("Update(%v, NavigateTo(%v)) = %#v", start, section, got)
			}
		}
	}
}

func TestUpdate_NavigateToInvalidSectionIsIgnored(t *testing.T) {
	start := AppState{Section: Skills, Theme: Light}
	for _, bad := range []Section{-1, Contact + 1, 42} {
		if got := Update(start, NavigateTo{Section: bad}); got != start {
			t.Fatalf("Update(%v, NavigateTo(%d)) = %#v, want unchanged", start, bad, got)
		}
	}
}

func TestUpdate_ToggleTheme(t *testing.T) {
	tests := []struct {
		name string
		from Theme
		want Theme
	}{
		{name: "light to dark", from: Light, want: Dark},
		{name: "dark to light", from: Dark, want: Light},
		{name: "unknown normalizes to dark", from: Theme(7), want: Dark},
		{name: "negative normalizes to dark", from: Theme(-3), want: Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Update(AppState{Section: About, Theme: tt.from}, ToggleTheme{})
			if got.Theme != tt.want {
				t.Fatalf("Theme = %v, want %v", got.Theme, tt.want)
			}
			if got.Section != About {
				t.Fatalf("Section = %v, want About", got.Section)
			}
		})
	}
}

func TestUpdate_NilMessageIsNoop(t *testing.T) {
	start := Initial()
	if got := Update(start, nil); got != start {
		t.Fatalf("Update(nil) = %#v, want %#v", got, start)
	}
}

func TestUpdate_ReachableStatesStayClosed(t *testing.T) {
	messages := []Message{ToggleTheme{}, NavigateTo{Section: 99}, nil}
	for _, s := range Sections() {
		messages = append(messages, NavigateTo{Section: s})
	}

	seen := map[AppState]bool{Initial(): true}
	frontier := []AppState{Initial()}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		for _, msg := range messages {
			next := Update(current, msg)
			if !next.Section.Valid() {
				t.Fatalf("Update(%v, %s) produced invalid section %d", current, Describe(msg), next.Section)
			}
			if next.Theme != Light && next.Theme != Dark {
				t.Fatalf("Update(%v, %s) produced invalid theme %d", current, Describe(msg), next.Theme)
			}
			if !seen[next] {
				seen[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	if len(seen) != len(Sections())*2 {
		t.Fatalf("reachable states = %d, want %d", len(seen), len(Sections())*2)
	}
}

func TestSections_DeclaredOrder(t *testing.T) {
	want := []Section{Home, About, Skills, Projects, Contact}
	got := Sections()
	if len(got) != len(want) {
		t.Fatalf("Sections() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sections()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	got[0] = Contact
	if Sections()[0] != Home {
		t.Fatalf("Sections() must return a copy")
	}
}
