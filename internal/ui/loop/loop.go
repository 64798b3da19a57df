// Package loop drives the viewer: it owns the AppState, applies one message
// at a time and re-renders the tree after each one.
//
// A Loop holds no lock. Hosts call it only from their UI goroutine.
package loop

import (
	"portfolio/internal/logging"
	"portfolio/internal/profile"
	"portfolio/internal/ui/state"
	"portfolio/internal/ui/view"
)

type Loop struct {
	profile     profile.Profile
	logger      *logging.Logger
	state       state.AppState
	tree        view.Node
	nextID      int
	subscribers map[int]func(state.AppState, view.Node)
	order       []int
}

func New(p profile.Profile, logger *logging.Logger) *Loop {
	l := &Loop{
		profile:     p,
		logger:      logger,
		state:       state.Initial(),
		subscribers: map[int]func(state.AppState, view.Node){},
	}
	l.tree = view.Render(l.state, l.profile)
	return l
}

func (l *Loop) State() state.AppState {
	return l.state
}

func (l *Loop) View() view.Node {
	return l.tree
}

func (l *Loop) Profile() profile.Profile {
	return l.profile
}

// Dispatch applies msg, replaces the owned state, re-renders and notifies
// subscribers in registration order. It returns the fresh tree.
func (l *Loop) Dispatch(msg state.Message) view.Node {
	prev := l.state
	l.state = state.Update(prev, msg)
	l.tree = view.Render(l.state, l.profile)

	l.logger.Debug("dispatch",
		logging.Field("message", state.Describe(msg)),
		logging.Field("section", l.state.Section.String()),
		logging.Field("theme", l.state.Theme.String()),
		logging.Field("changed", prev != l.state),
	)

	for _, id := range l.order {
		if fn, ok := l.subscribers[id]; ok {
			fn(l.state, l.tree)
		}
	}
	return l.tree
}

// Subscribe registers fn to run after every dispatch and returns a func that
// removes it.
func (l *Loop) Subscribe(fn func(state.AppState, view.Node)) func() {
	if fn == nil {
		panic("loop.Loop.Subscribe: callback must not be nil")
	}
	id := l.nextID
	l.nextID++
	l.subscribers[id] = fn
	l.order = append(l.order, id)
	return func() {
		delete(l.subscribers, id)
		for i, v := range l.order {
			if v == id {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
	}
}
