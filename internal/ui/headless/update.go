package headless

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"portfolio/internal/logging"
	"portfolio/internal/ui/state"
	"portfolio/internal/ui/view"
)

func (m *headlessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		if _, ok := msg.(quitNowMsg); ok {
			m.cleanup()
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case logMsg:
		m.lastLog = string(msg)
		return m, waitForLog(m.logCh)
	case rootDoneMsg:
		m.logger.Info("root context canceled; closing viewer TUI")
		return m, m.beginQuitCmd()
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m, m.apply(TranslateKey(m.keys, msg))
	}
	return m, nil
}

func (m *headlessModel) apply(intent Intent) tea.Cmd {
	switch intent.Kind {
	case IntentDispatch:
		m.dispatch(intent.Message)
	case IntentFocusNext:
		m.moveFocus(1)
	case IntentFocusPrev:
		m.moveFocus(-1)
	case IntentActivate:
		if action, ok := m.focused(); ok {
			m.dispatch(action.Message)
		}
	case IntentScroll:
		m.scroll(intent.Delta)
	case IntentPage:
		m.scroll(intent.Delta * max(m.body.Height, 1))
	case IntentQuit:
		return m.beginQuitCmd()
	}
	return nil
}

func (m *headlessModel) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(wheelStep)
	case msg.Action == tea.MouseActionRelease &&
		(msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone):
		for _, action := range view.Actions(m.loop.View()) {
			if z := zone.Get(action.ID); z != nil && z.InBounds(msg) {
				m.focus = action.ID
				m.dispatch(action.Message)
				m.refreshBody()
				return
			}
		}
	}
}

// dispatch hands msg to the loop; the loop subscriber redraws.
func (m *headlessModel) dispatch(msg state.Message) {
	m.loop.Dispatch(msg)
}

func (m *headlessModel) onRender(s state.AppState, tree view.Node) {
	if m.focus != "" {
		if _, ok := view.Find(tree, m.focus); !ok {
			m.focus = ""
		}
	}
	m.refreshBody()
	if s.Section != m.section {
		m.section = s.Section
		m.body.GotoTop()
		m.logger.Debug("section changed", logging.Field("section", s.Section.String()))
	}
}

func (m *headlessModel) focused() (view.Action, bool) {
	if m.focus == "" {
		return view.Action{}, false
	}
	for _, action := range view.Actions(m.loop.View()) {
		if action.ID == m.focus {
			return action, true
		}
	}
	return view.Action{}, false
}

// moveFocus steps through the pressable nodes in tree order, wrapping at
// both ends. With nothing focused, forward starts at the first and backward
// at the last.
func (m *headlessModel) moveFocus(step int) {
	actions := view.Actions(m.loop.View())
	if len(actions) == 0 {
		m.focus = ""
		return
	}
	idx := -1
	for i, action := range actions {
		if action.ID == m.focus {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(actions) - 1
	default:
		idx = ((idx+step)%len(actions) + len(actions)) % len(actions)
	}
	m.focus = actions[idx].ID
	m.refreshBody()
}

func (m *headlessModel) scroll(delta int) {
	m.body.SetYOffset(m.body.YOffset + delta)
}

func (m *headlessModel) beginQuitCmd() tea.Cmd {
	m.quitting = true
	return quitProgramCmd()
}

func quitProgramCmd() tea.Cmd {
	return tea.Sequence(func() tea.Msg {
		return tea.DisableMouse()
	}, waitForMouseDrainCmd(), func() tea.Msg {
		return quitNowMsg{}
	})
}

func waitForMouseDrainCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(120 * time.Millisecond)
		return nil
	}
}
