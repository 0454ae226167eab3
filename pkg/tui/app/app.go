// Package teaui hosts the Bubble Tea program for the fip TUI.
package teaui

import (
	"context"
	"strings"

	bhelp "github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fip/pkg/app"
	"tableflip.dev/fip/pkg/logging"
	"tableflip.dev/fip/pkg/profile"
	"tableflip.dev/fip/pkg/shortcut"
	"tableflip.dev/fip/pkg/source"
	"tableflip.dev/fip/pkg/tui/components/card"
	"tableflip.dev/fip/pkg/tui/components/help"
	"tableflip.dev/fip/pkg/tui/components/statusbar"
	"tableflip.dev/fip/pkg/tui/theme"
)

type viewMode int

const (
	viewStage viewMode = iota
	viewRoster
)

// parseView accepts "stage" or "roster".
func parseView(raw string) viewMode {
	if strings.EqualFold(strings.TrimSpace(raw), "roster") {
		return viewRoster
	}
	return viewStage
}

// Options tunes the UI.
type Options struct {
	// View is the starting view, "stage" or "roster".
	View string
	// WatchPath, when set, re-fetches whenever the file changes.
	WatchPath string
	Assets    profile.Assets
}

// Model contains UI state. Every cursor change happens on the Update
// goroutine, including the binder callbacks fired from Hub.Publish.
type Model struct {
	session *app.Session
	ctx     context.Context
	cancel  context.CancelFunc

	keys  keyMap
	view  viewMode
	theme theme.Theme

	roster     list.Model
	card       *card.Model
	bottom     statusbar.Model
	footerHelp bhelp.Model
	help       *help.Model

	helpOpen        bool
	resumeShortcuts bool
	// releases is set once the terminal reports a key release. Until then
	// each press also stands in for its release.
	releases bool

	watchPath   string
	watchCh     <-chan source.Change
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int

	stopObserve func()
}

// New creates a UI model over session.
func New(parent context.Context, session *app.Session, opts Options) *Model {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	th := theme.Default()
	keys := defaultKeyMap()

	assets := opts.Assets
	if assets.Base == "" {
		assets = profile.DefaultAssets()
	}

	m := &Model{
		session:    session,
		ctx:        ctx,
		cancel:     cancel,
		keys:       keys,
		view:       parseView(opts.View),
		theme:      th,
		roster:     newRoster(),
		card:       card.New(th.Card, assets),
		bottom:     statusbar.New(th.Footer),
		footerHelp: bhelp.New(),
		help:       help.New(th.Modal, 60, 20, keys.sections()),
		watchPath:  opts.WatchPath,
	}
	m.help.SetFooter(triggerNote(session.Binder.Trigger()))
	m.stopObserve = session.Cursor.Observe(func(i int) {
		m.roster.Select(i)
	})
	return m
}

func triggerNote(p shortcut.Phase) string {
	if p == shortcut.PhasePress {
		return "Arrow shortcuts fire when the key is pressed."
	}
	return "Arrow shortcuts fire when the key is released. Terminals that do not report releases fire on press instead."
}

// Init fetches the list and starts the file watch, if any.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), startWatchCmd(m.ctx, m.watchPath))
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case fetchedMsg:
		m.handleFetched(msg)
	case watchStartedMsg:
		if msg.err != nil {
			m.bottom.SetNote("watch failed: " + msg.err.Error())
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		logging.For("tui").WithField("path", msg.change.Path).Debug("source changed")
		cmds = append(cmds, m.fetch(), m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	case tea.KeyReleaseMsg:
		m.handleKeyRelease(msg)
	default:
		if m.helpOpen {
			cmds = append(cmds, m.help.Update(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleFetched(msg fetchedMsg) {
	m.session.Sync()
	m.roster.SetItems(rosterItems(m.session.Store.Profiles()))
	if m.session.Store.Len() > 0 {
		m.roster.Select(m.session.Cursor.Index())
	}
	entry := logging.For("tui").WithField("phase", msg.status.Phase)
	if msg.status.Failed() {
		entry.WithField("error", msg.status.Message).Warn("fetch failed")
	} else {
		entry.WithField("count", m.session.Store.Len()).Debug("fetch settled")
	}
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	m.bottom.SetNote("")
	if m.helpOpen {
		m.handleHelpKey(msg, cmds)
		return
	}

	if sig, ok := m.keys.signalFor(msg); ok {
		m.publish(sig, shortcut.PhasePress)
		if !m.releases {
			m.publish(sig, shortcut.PhaseRelease)
		}
		return
	}

	switch {
	case matches(msg, m.keys.Quit):
		*cmds = append(*cmds, tea.Quit)
	case matches(msg, m.keys.Help):
		m.openHelp()
	case matches(msg, m.keys.Toggle):
		if m.view == viewStage {
			m.view = viewRoster
		} else {
			m.view = viewStage
		}
	case matches(msg, m.keys.Refresh):
		*cmds = append(*cmds, m.fetch())
	case matches(msg, m.keys.Shortcuts):
		if m.session.Binder.Active() {
			m.session.Binder.Disable()
			m.bottom.SetNote("arrow shortcuts paused")
		} else {
			m.session.Binder.Enable()
			m.bottom.SetNote("arrow shortcuts resumed")
		}
	case m.view == viewRoster && matches(msg, m.keys.Select):
		if item, ok := m.roster.SelectedItem().(participantItem); ok {
			if err := m.session.Select(item.index); err != nil {
				m.bottom.SetNote(err.Error())
				return
			}
			m.view = viewStage
		}
	case m.view == viewRoster && (matches(msg, m.keys.Up) || matches(msg, m.keys.Down)):
		var cmd tea.Cmd
		m.roster, cmd = m.roster.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleKeyRelease(msg tea.KeyReleaseMsg) {
	sig, ok := m.keys.signalFor(msg)
	if !ok {
		return
	}
	if !m.releases {
		// The matching press already fired a synthetic release.
		m.releases = true
		return
	}
	m.publish(sig, shortcut.PhaseRelease)
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if matches(msg, m.keys.Close) {
		m.closeHelp()
		return
	}
	if msg.String() == "ctrl+c" {
		*cmds = append(*cmds, tea.Quit)
		return
	}
	*cmds = append(*cmds, m.help.Update(msg))
}

func (m *Model) openHelp() {
	m.helpOpen = true
	m.resumeShortcuts = m.session.Binder.Active()
	m.session.Binder.Disable()
}

func (m *Model) closeHelp() {
	m.helpOpen = false
	if m.resumeShortcuts {
		m.session.Binder.Enable()
	}
}

func (m *Model) publish(sig shortcut.Signal, phase shortcut.Phase) {
	m.session.Hub.Publish(shortcut.Event{Signal: sig, Phase: phase})
}

// View renders the active view above the status bar.
func (m *Model) View() string {
	width := m.termWidth
	if width <= 0 {
		width = 80
	}

	var body string
	switch {
	case m.helpOpen:
		body = m.help.View()
	case m.view == viewRoster:
		body = m.roster.View()
	default:
		body = m.stageView()
	}

	m.refreshFooter()
	return lipgloss.JoinVertical(lipgloss.Left, body, m.bottom.View(width))
}

func (m *Model) stageView() string {
	p, ok := m.session.Selected()
	if !ok {
		st := m.session.Store.Status()
		switch {
		case st.Loading():
			return m.card.Empty("Loading participants…")
		case st.Failed():
			return m.card.Empty(st.Message)
		}
		return m.card.Empty("")
	}
	return m.card.View(p, card.Nav{
		PrevDisabled: m.session.Cursor.PrevDisabled(),
		NextDisabled: m.session.Cursor.NextDisabled(),
	})
}

func (m *Model) refreshFooter() {
	m.bottom.SetStatus(m.session.Store.Status())
	m.bottom.SetPosition(m.session.Cursor.Index(), m.session.Store.Len())
	m.bottom.SetShortcuts(m.session.Binder.Active())
	m.bottom.SetHelp(m.footerHelp.ShortHelpView(m.keys.ShortHelp()))
}

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	height := m.termHeight - m.bottom.Height()
	if height < 5 {
		height = 5
	}
	m.roster.SetSize(m.termWidth, height)

	cardWidth := m.termWidth - 2
	if cardWidth > 72 {
		cardWidth = 72
	}
	m.card.SetWidth(cardWidth)

	helpWidth := m.termWidth - 4
	if helpWidth > 72 {
		helpWidth = 72
	}
	m.help.SetSize(helpWidth, height)
}

// Close stops background work.
func (m *Model) Close() {
	m.stopWatch()
	if m.stopObserve != nil {
		m.stopObserve()
		m.stopObserve = nil
	}
	m.cancel()
}

// Run starts the program and blocks until it exits.
func Run(ctx context.Context, session *app.Session, opts Options) error {
	m := New(ctx, session, opts)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, sep)
}
