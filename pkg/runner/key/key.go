// Package key prints the key reference for the terminal interface.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/fip/pkg/shortcut"
	teaui "tableflip.dev/fip/pkg/tui/app"
	"tableflip.dev/fip/pkg/tui/components/help"
)

// Key prints the UI key bindings.
type Key struct {
	Trigger shortcut.Phase
}

// Do renders each binding group to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")
	for _, s := range teaui.Sections() {
		k.Section(ctx, s)
		_, _ = fmt.Fprintln(color.Output, "")
	}
	faint := color.New(color.Faint)
	_, _ = faint.Fprintf(color.Output, "Arrow shortcuts fire on key %s.\n\n", k.Trigger)
	return nil
}

// Section renders one group as a two column table.
func (k *Key) Section(_ context.Context, s help.Section) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(s.Title), bold.Sprint("Action"))
	for _, b := range s.Bindings {
		h := b.Help()
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
