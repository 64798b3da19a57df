package loop

import "portfolio/internal/ui/state"

// Shortcut maps a single-key shortcut to a message: "1" to "5" jump to the
// sections in navbar order and "t" toggles the theme. Both hosts share it.
func Shortcut(key string) (state.Message, bool) {
	switch key {
	case "t", "T":
		return state.ToggleTheme{}, true
	}
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return nil, false
	}
	sections := state.Sections()
	i := int(key[0] - '1')
	if i >= len(sections) {
		return nil, false
	}
	return state.NavigateTo{Section: sections[i]}, true
}
