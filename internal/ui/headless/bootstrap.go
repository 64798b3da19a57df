package headless

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/profile"
	"portfolio/internal/ui/headless/keyboard"
	"portfolio/internal/ui/loop"
	"portfolio/internal/ui/state"
	"portfolio/internal/ui/view"
)

const runErrorExitCode = 1

// Run draws the viewer in the terminal and blocks until the user quits or
// rootCtx is cancelled.
func Run(rootCtx context.Context, buildVersion string, _ config.Options, p profile.Profile, logger *logging.Logger) {
	defer forceDisableMouseTracking()

	if logger == nil {
		panic("headless.Run: nil logger")
	}
	logger.SetTerminalOutputEnabled(false)
	defer logger.SetTerminalOutputEnabled(true)
	logger.Info("starting viewer TUI", logging.Field("version", buildVersion))

	m := newHeadlessModel(rootCtx, buildVersion, p, logger)
	zone.NewGlobal()
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.program = program

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-done:
		case <-m.rootCtx.Done():
			program.Send(rootDoneMsg{})
		}
	}()

	result, runErr := program.Run()
	if model, _ := result.(*headlessModel); model != nil {
		model.cleanup()
	}
	if runErr != nil {
		logger.Error("terminal program failed", logging.Field("error", runErr))
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(runErrorExitCode)
	}
}

func forceDisableMouseTracking() {
	_, _ = os.Stdout.WriteString("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l\x1b[?1015l")
}

func newHeadlessModel(rootCtx context.Context, buildVersion string, p profile.Profile, logger *logging.Logger) *headlessModel {
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	m := &headlessModel{
		buildVersion: buildVersion,
		modelDeps: modelDeps{
			loop:    loop.New(p, logger),
			logger:  logger,
			rootCtx: rootCtx,
		},
		modelChrome: modelChrome{
			keys:   keyboard.New(),
			help:   help.New(),
			body:   viewport.New(defaultWidth, defaultHeight),
			width:  defaultWidth,
			height: defaultHeight,
		},
		logCh: make(chan string, logChannelBufferSize),
	}
	m.section = m.loop.State().Section
	m.loop.Subscribe(func(s state.AppState, tree view.Node) {
		m.onRender(s, tree)
	})

	m.unsubscribe = logger.Subscribe(func(event logging.Event) {
		line := logging.FormatEventLine(event)
		select {
		case m.logCh <- line:
		default:
			select {
			case <-m.logCh:
			default:
			}
			select {
			case m.logCh <- line:
			default:
			}
		}
	})

	m.layout()
	return m
}

func (m *headlessModel) Init() tea.Cmd {
	return waitForLog(m.logCh)
}

func waitForLog(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(line)
	}
}

func (m *headlessModel) cleanup() {
	m.cleanupOnce.Do(func() {
		m.logger.Debug("headless cleanup started")
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		m.logger.Debug("headless cleanup complete")
	})
}
