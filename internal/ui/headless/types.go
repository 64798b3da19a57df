package headless

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/logging"
	"portfolio/internal/ui/headless/keyboard"
	"portfolio/internal/ui/loop"
	"portfolio/internal/ui/state"
)

const (
	logChannelBufferSize = 64
	wheelStep            = 3
	minBodyHeight        = 3
	defaultWidth         = 100
	defaultHeight        = 32
)

type logMsg string
type rootDoneMsg struct{}
type quitNowMsg struct{}

type modelDeps struct {
	loop        *loop.Loop
	logger      *logging.Logger
	unsubscribe func()
	rootCtx     context.Context
	program     *tea.Program
}

type modelChrome struct {
	keys  keyboard.Map
	help  help.Model
	body  viewport.Model
	focus string

	width   int
	height  int
	lastLog string
	section state.Section
}

type headlessModel struct {
	buildVersion string
	modelDeps
	modelChrome
	logCh       chan string
	quitting    bool
	cleanupOnce sync.Once
}
