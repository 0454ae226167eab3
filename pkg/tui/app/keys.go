package teaui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/v2/key"

	"tableflip.dev/fip/pkg/shortcut"
	"tableflip.dev/fip/pkg/tui/components/help"
)

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Toggle    key.Binding
	Refresh   key.Binding
	Shortcuts key.Binding
	Help      key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous participant")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next participant")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up the roster")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down the roster")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show on stage")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "roster / stage")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "fetch again")),
		Shortcuts: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shortcuts on/off")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:     key.NewBinding(key.WithKeys("esc", "q", "?"), key.WithHelp("esc", "close help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Help, k.Quit}
}

// FullHelp groups every binding.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Up, k.Down, k.Select, k.Toggle},
		{k.Refresh, k.Shortcuts, k.Help, k.Quit},
	}
}

func (k keyMap) sections() []help.Section {
	groups := k.FullHelp()
	return []help.Section{
		{Title: "Navigate", Bindings: groups[0]},
		{Title: "Roster", Bindings: groups[1]},
		{Title: "App", Bindings: groups[2]},
	}
}

func matches(msg fmt.Stringer, b key.Binding) bool {
	return b.Enabled() && slices.Contains(b.Keys(), msg.String())
}

// signalFor maps a key to a navigation signal.
func (k keyMap) signalFor(msg fmt.Stringer) (shortcut.Signal, bool) {
	switch {
	case matches(msg, k.Prev):
		return shortcut.Backward, true
	case matches(msg, k.Next):
		return shortcut.Forward, true
	}
	return 0, false
}

// Sections lists the UI key bindings grouped for display.
func Sections() []help.Section {
	return defaultKeyMap().sections()
}
