package printers

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/fip/pkg/profile"
	"tableflip.dev/fip/pkg/tui/theme"
)

type PrettyPrint struct {
	Out    io.Writer
	Assets profile.Assets
	// Links wraps photo references in OSC 8 hyperlinks.
	Links bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return os.Stdout
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " participant")
	default:
		_, _ = c.Fprintln(pp.out(), " participants")
	}
}

func (pp *PrettyPrint) Profiles(profiles ...profile.Profile) {
	w := pp.out()
	if len(profiles) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	o := termenv.NewOutput(w)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Slot"), bold.Sprint("Name"), bold.Sprint("Category"),
		bold.Sprint("Flag"), bold.Sprint("Age"), bold.Sprint("Photo"))
	for i, p := range profiles {
		category := p.Category
		if category != "" {
			category = o.String(category).Foreground(o.Color(theme.Accent(category))).String()
		}
		tbl.AddRow(i+1, p.SlotSchedule, p.DisplayName(), category, p.Flag, p.AgeOnEvent, pp.photo(p))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")
}

func (pp *PrettyPrint) photo(p profile.Profile) string {
	if p.Photo == "" {
		return ""
	}
	url := pp.Assets.PhotoURL(p)
	if pp.Links {
		return termenv.Hyperlink(url, p.Photo)
	}
	return url
}
