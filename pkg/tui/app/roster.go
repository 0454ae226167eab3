package teaui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"

	"tableflip.dev/fip/pkg/profile"
)

// participantItem is one roster row.
type participantItem struct {
	index int
	p     profile.Profile
}

func (it participantItem) Title() string {
	name := it.p.DisplayName()
	if name == "" {
		name = "(unnamed)"
	}
	if it.p.SlotSchedule != "" {
		return fmt.Sprintf("%-6s %s", it.p.SlotSchedule, name)
	}
	return name
}

func (it participantItem) Description() string {
	return joinNonEmpty(" · ", it.p.Category, it.p.Flag)
}

func (it participantItem) FilterValue() string { return it.p.DisplayName() }

func rosterItems(profiles []profile.Profile) []list.Item {
	items := make([]list.Item, 0, len(profiles))
	for i, p := range profiles {
		items = append(items, participantItem{index: i, p: p})
	}
	return items
}

func newRoster() list.Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 60, 20)
	l.Title = "Participants"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}
