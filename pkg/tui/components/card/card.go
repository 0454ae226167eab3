// Package card renders the stage view of a single participant.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/fip/pkg/profile"
	"tableflip.dev/fip/pkg/tui/theme"
)

// Nav describes the prev/next affordances around the card.
type Nav struct {
	PrevDisabled bool
	NextDisabled bool
}

// Model renders one profile at a fixed width.
type Model struct {
	theme  theme.CardTheme
	assets profile.Assets
	width  int
}

// New returns a card renderer.
func New(th theme.CardTheme, assets profile.Assets) *Model {
	return &Model{theme: th, assets: assets, width: 60}
}

// SetWidth sets the outer width, including the frame.
func (m *Model) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	m.width = width
}

func (m *Model) inner() int {
	w := m.frameWidth() - m.theme.Frame.GetHorizontalFrameSize()
	if w < 10 {
		w = 10
	}
	return w
}

// View renders p framed with the category accent.
func (m *Model) View(p profile.Profile, nav Nav) string {
	inner := m.inner()
	var lines []string

	header := joinNonEmpty(" · ", p.SlotSchedule, strings.ToUpper(p.Category))
	if header != "" {
		lines = append(lines, m.theme.Slot.Render(truncate.StringWithTail(header, uint(inner), "…")))
		lines = append(lines, "")
	}

	name := p.DisplayName()
	if name == "" {
		name = "Unnamed participant"
	}
	nameStyle := theme.AccentStyle(m.theme.Name, p.Category)
	lines = append(lines, nameStyle.Render(wordwrap.String(name, inner)))

	detail := joinNonEmpty(" · ", p.Flag, ageLabel(p.AgeOnEvent))
	if detail != "" {
		lines = append(lines, m.theme.Detail.Render(wordwrap.String(detail, inner)))
	}

	var links []string
	if p.Photo != "" {
		links = append(links, "photo "+m.assets.PhotoURL(p))
	}
	if p.FlagImage != "" {
		links = append(links, "flag  "+m.assets.FlagURL(p))
	}
	if p.CategoryImage != "" {
		links = append(links, "badge "+m.assets.CategoryURL(p))
	}
	if len(links) > 0 {
		lines = append(lines, "")
		for _, l := range links {
			lines = append(lines, m.theme.Link.Render(truncate.StringWithTail(l, uint(inner), "…")))
		}
	}

	lines = append(lines, "", m.navLine(nav, inner))

	frame := theme.AccentStyle(m.theme.Frame, p.Category).UnsetForeground()
	return frame.Width(m.frameWidth()).Render(strings.Join(lines, "\n"))
}

// Empty renders the placeholder shown when there is nothing to display.
func (m *Model) Empty(message string) string {
	if message == "" {
		message = "No participants loaded."
	}
	body := m.theme.Empty.Render(wordwrap.String(message, m.inner()))
	return m.theme.Frame.Width(m.frameWidth()).Render(body)
}

// frameWidth keeps the rendered card, border included, within m.width.
func (m *Model) frameWidth() int {
	return m.width - m.theme.Frame.GetHorizontalBorderSize()
}

func (m *Model) navLine(nav Nav, inner int) string {
	prev := m.theme.Arrow.Render("‹ prev")
	if nav.PrevDisabled {
		prev = m.theme.Disabled.Render("‹ prev")
	}
	next := m.theme.Arrow.Render("next ›")
	if nav.NextDisabled {
		next = m.theme.Disabled.Render("next ›")
	}
	gap := inner - lipgloss.Width(prev) - lipgloss.Width(next)
	if gap < 1 {
		gap = 1
	}
	return prev + strings.Repeat(" ", gap) + next
}

func ageLabel(age string) string {
	age = strings.TrimSpace(age)
	if age == "" {
		return ""
	}
	return age + " yrs"
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, sep)
}
