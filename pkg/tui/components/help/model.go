package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/fip/pkg/tui/theme"
)

// Section is a titled group of key bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

// Model renders the key reference inside a bordered, scrollable viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	theme    theme.ModalTheme
	sections []Section
	footer   string
}

// New constructs a help overlay sized to the provided bounds.
func New(th theme.ModalTheme, width, height int, sections []Section) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	model := &Model{
		viewport: vp,
		theme:    th,
		sections: sections,
	}
	model.SetSize(width, height)
	return model
}

// SetFooter adds a closing paragraph below the bindings.
func (m *Model) SetFooter(text string) {
	m.footer = text
	m.renderContent(m.innerWidth())
}

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return cmd
}

// View renders the help content inside a rounded frame.
func (m *Model) View() string {
	return m.theme.Frame.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// Content returns the unframed help text.
func (m *Model) Content() string {
	return m.build(m.innerWidth())
}

// SetSize configures the overlay dimensions and re-renders to fit.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}

	m.width = width
	m.height = height

	frameY := m.theme.Frame.GetVerticalFrameSize()
	m.viewport.SetWidth(m.innerWidth())
	m.viewport.SetHeight(max(height-frameY, 1))

	m.renderContent(m.innerWidth())
}

func (m *Model) innerWidth() int {
	return max(m.width-m.theme.Frame.GetHorizontalFrameSize()-m.theme.Frame.GetHorizontalBorderSize(), 1)
}

func (m *Model) renderContent(wrap int) {
	m.viewport.SetContent(m.build(wrap))
	m.viewport.SetYOffset(0)
}

func (m *Model) build(wrap int) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keys"))
	b.WriteString("\n")

	keyWidth := 0
	for _, s := range m.sections {
		for _, kb := range s.Bindings {
			keyWidth = max(keyWidth, lipgloss.Width(kb.Help().Key))
		}
	}

	for _, s := range m.sections {
		b.WriteString("\n")
		if s.Title != "" {
			b.WriteString(m.theme.Title.Render(s.Title))
			b.WriteString("\n")
		}
		for _, kb := range s.Bindings {
			h := kb.Help()
			if h.Key == "" {
				continue
			}
			keyCol := m.theme.Key.Render(fmt.Sprintf("%-*s", keyWidth, h.Key))
			b.WriteString(fmt.Sprintf("  %s  %s\n", keyCol, m.theme.Body.Render(h.Desc)))
		}
	}
	if m.footer != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(m.footer, max(wrap, 10)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
