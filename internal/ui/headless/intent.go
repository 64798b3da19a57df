package headless

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/ui/headless/keyboard"
	"portfolio/internal/ui/loop"
	"portfolio/internal/ui/state"
)

type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentDispatch
	IntentFocusNext
	IntentFocusPrev
	IntentActivate
	IntentScroll
	IntentPage
	IntentQuit
)

// Intent is what a key press asks the terminal host to do. Only
// IntentDispatch reaches the application loop; the rest is host chrome.
type Intent struct {
	Kind    IntentKind
	Message state.Message
	// Delta is the scroll direction and size: lines for IntentScroll,
	// pages for IntentPage.
	Delta int
}

// TranslateKey maps a key press to an Intent without touching any state.
func TranslateKey(keys keyboard.Map, msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Kind: IntentQuit}
	case key.Matches(msg, keys.NextFocus):
		return Intent{Kind: IntentFocusNext}
	case key.Matches(msg, keys.PrevFocus):
		return Intent{Kind: IntentFocusPrev}
	case key.Matches(msg, keys.Activate):
		return Intent{Kind: IntentActivate}
	case key.Matches(msg, keys.ScrollUp):
		return Intent{Kind: IntentScroll, Delta: -1}
	case key.Matches(msg, keys.ScrollDown):
		return Intent{Kind: IntentScroll, Delta: 1}
	case key.Matches(msg, keys.PageUp):
		return Intent{Kind: IntentPage, Delta: -1}
	case key.Matches(msg, keys.PageDown):
		return Intent{Kind: IntentPage, Delta: 1}
	case key.Matches(msg, keys.Jump, keys.Toggle):
		if m, ok := loop.Shortcut(msg.String()); ok {
			return Intent{Kind: IntentDispatch, Message: m}
		}
	}
	return Intent{}
}
