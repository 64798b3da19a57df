package headless

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"portfolio/internal/ui/headless/render"
	hstyles "portfolio/internal/ui/headless/theme"
	uitheme "portfolio/internal/ui/theme"
	"portfolio/internal/ui/view"
)

// footerRows is the help line plus the latest log line.
const footerRows = 2

func (m *headlessModel) palette() uitheme.Palette {
	return uitheme.PaletteFor(m.loop.State().Theme)
}

func (m *headlessModel) options() render.Options {
	return render.Options{Palette: m.palette(), Focus: m.focus, Width: m.width}
}

func (m *headlessModel) header() string {
	nav, _ := view.Find(m.loop.View(), view.IDNavbar)
	return render.Tree(nav, m.options())
}

func (m *headlessModel) footer() string {
	m.help.Width = m.width
	helpLine := hstyles.HelpStyle.Render(m.help.View(m.keys))
	logLine := hstyles.HelpStyle.Render(render.TruncateDisplayWidth(m.lastLog, m.width))
	return lipgloss.JoinVertical(lipgloss.Left, helpLine, logLine)
}

func (m *headlessModel) layout() {
	gap := render.Rows(view.NavbarGap)
	m.body.Width = m.width
	m.body.Height = max(m.height-lipgloss.Height(m.header())-gap-footerRows, minBodyHeight)
	m.refreshBody()
}

func (m *headlessModel) refreshBody() {
	content, _ := view.Find(m.loop.View(), view.IDContent)
	m.body.SetContent(render.Tree(content, m.options()))
}

// View is the Bubble Tea render entrypoint. Zones are scanned last so mouse
// hit-testing matches what was drawn.
func (m *headlessModel) View() string {
	bg := lipgloss.WithWhitespaceBackground(hstyles.Lip(hstyles.Opaque(m.palette().Background)))
	header := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.header(), bg)
	gap := emptyRows(render.Rows(view.NavbarGap))
	frame := lipgloss.JoinVertical(lipgloss.Left, header, gap, m.body.View(), m.footer())
	return zone.Scan(lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, frame, bg))
}

func emptyRows(n int) string {
	return strings.Repeat("\n", max(n-1, 0))
}
