package statusbar

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/fip/pkg/store"
	"tableflip.dev/fip/pkg/tui/theme"
)

// Model tracks footer state: key help, fetch status, position and whether
// shortcuts are live.
type Model struct {
	theme     theme.FooterTheme
	helpLine  string
	status    store.FetchStatus
	index     int
	count     int
	shortcuts bool
	note      string
}

// New returns a footer with shortcuts shown as on.
func New(th theme.FooterTheme) Model {
	return Model{theme: th, shortcuts: true}
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) { m.helpLine = help }

// SetStatus records the latest fetch status.
func (m *Model) SetStatus(st store.FetchStatus) { m.status = st }

// SetPosition records the cursor index and list length.
func (m *Model) SetPosition(index, count int) {
	m.index = index
	m.count = count
}

// SetShortcuts records whether the binder is active.
func (m *Model) SetShortcuts(active bool) { m.shortcuts = active }

// SetNote shows a transient message, cleared with "".
func (m *Model) SetNote(note string) { m.note = note }

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int { return 1 }

// View renders the footer clipped to width.
func (m Model) View(width int) string {
	var segments []string
	switch {
	case m.status.Loading():
		segments = append(segments, m.theme.Loading.Render("Loading…"))
	case m.status.Failed():
		segments = append(segments, m.theme.Error.Render(m.status.Message))
	}
	if m.count > 0 {
		segments = append(segments, m.theme.Position.Render(fmt.Sprintf("%d/%d", m.index+1, m.count)))
	} else if !m.status.Loading() {
		segments = append(segments, m.theme.Muted.Render("no participants"))
	}
	if m.shortcuts {
		segments = append(segments, m.theme.Status.Render("shortcuts on"))
	} else {
		segments = append(segments, m.theme.Muted.Render("shortcuts off"))
	}
	if m.note != "" {
		segments = append(segments, m.theme.Status.Render(m.note))
	}
	if m.helpLine != "" {
		segments = append(segments, m.theme.Help.Render(m.helpLine))
	}
	line := strings.Join(segments, " │ ")
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	return line
}
