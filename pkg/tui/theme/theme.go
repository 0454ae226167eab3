package theme

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Card   CardTheme
	Roster RosterTheme
	Modal  ModalTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Loading  lipgloss.Style
	Position lipgloss.Style
	Muted    lipgloss.Style
}

// CardTheme styles the stage profile card.
type CardTheme struct {
	Frame    lipgloss.Style
	Slot     lipgloss.Style
	Name     lipgloss.Style
	Detail   lipgloss.Style
	Link     lipgloss.Style
	Arrow    lipgloss.Style
	Disabled lipgloss.Style
	Empty    lipgloss.Style
}

// RosterTheme styles the participant list view.
type RosterTheme struct {
	Title lipgloss.Style
}

// ModalTheme styles centered modal overlays (e.g., help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Key   lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Loading:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			Position: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Card: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 3),
			Slot:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Name:     lipgloss.NewStyle().Bold(true),
			Detail:   lipgloss.NewStyle(),
			Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Arrow:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Roster: RosterTheme{
			Title: lipgloss.NewStyle().Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

// Accent returns a stable hex color for a category. Equal names (ignoring
// case and surrounding space) always map to the same hue.
func Accent(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		return colorful.Hsv(0, 0, 0.75).Hex()
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	hue := float64(h.Sum32()%360) + 0.5
	return colorful.Hcl(hue, 0.55, 0.72).Clamped().Hex()
}

// AccentStyle is base with the category accent as foreground and border.
func AccentStyle(base lipgloss.Style, category string) lipgloss.Style {
	c := lipgloss.Color(Accent(category))
	return base.Foreground(c).BorderForeground(c)
}
