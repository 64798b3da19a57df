//go:build !headless

package gui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/profile"
	"portfolio/internal/ui/loop"
	"portfolio/internal/ui/state"
	uitheme "portfolio/internal/ui/theme"
	"portfolio/internal/ui/view"
)

const (
	appID        = "dev.johndeveloper.portfolio"
	windowWidth  = 900
	windowHeight = 700
)

func Available() bool {
	return true
}

type window struct {
	app      fyne.App
	win      fyne.Window
	loop     *loop.Loop
	logger   *logging.Logger
	quitOnce sync.Once
}

// Run opens the viewer window and blocks until it closes or rootCtx is
// cancelled.
func Run(rootCtx context.Context, buildVersion string, _ config.Options, p profile.Profile, logger *logging.Logger) {
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	uiApp := app.NewWithID(appID)
	w := &window{
		app:    uiApp,
		loop:   loop.New(p, logger),
		logger: logger,
	}
	uiApp.Settings().SetTheme(newPortfolioTheme(w.loop.State().Theme))
	w.win = uiApp.NewWindow(p.Title)
	w.win.SetMaster()
	w.win.Resize(fyne.NewSize(windowWidth, windowHeight))
	w.win.Canvas().SetOnTypedRune(w.onTypedRune)

	w.loop.Subscribe(func(s state.AppState, tree view.Node) {
		w.render(s, tree)
	})
	w.render(w.loop.State(), w.loop.View())

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-stopped:
			return
		case <-rootCtx.Done():
		}
		fyne.Do(func() {
			logger.Info("root context canceled; closing viewer window")
			w.quit()
		})
	}()
	uiApp.Lifecycle().SetOnStopped(func() {
		logger.Debug("app lifecycle OnStopped hook triggered")
	})

	logger.Info("starting viewer window", logging.Field("version", buildVersion))
	w.win.ShowAndRun()
}

func (w *window) render(s state.AppState, tree view.Node) {
	w.app.Settings().SetTheme(newPortfolioTheme(s.Theme))
	b := &builder{palette: uitheme.PaletteFor(s.Theme), dispatch: w.dispatch}
	w.win.SetContent(b.build(tree))
}

// dispatch runs on the fyne UI goroutine: taps and typed runes are
// delivered there.
func (w *window) dispatch(msg state.Message) {
	w.loop.Dispatch(msg)
}

func (w *window) onTypedRune(r rune) {
	if msg, ok := loop.Shortcut(string(r)); ok {
		w.dispatch(msg)
	}
}

func (w *window) quit() {
	w.quitOnce.Do(func() {
		w.logger.Debug("calling fyne app quit")
		w.app.Quit()
	})
}
