package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/fip/pkg/app"
	"tableflip.dev/fip/pkg/commands/options"
	"tableflip.dev/fip/pkg/config"
	"tableflip.dev/fip/pkg/printers"
)

// Get fetches the list once and prints it.
type Get struct {
	Config *config.Config
	JSON   bool
	// Links renders photo references as terminal hyperlinks.
	Links  bool
	Output *options.OutputOptions
}

func (n *Get) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not get, no configuration")
	}
	fetcher, err := n.Config.Fetcher()
	if err != nil {
		return err
	}
	session := app.NewSession(fetcher)
	defer session.Close()

	st := session.Refresh(ctx)
	if st.Failed() {
		return errors.New(st.Message)
	}
	profiles := session.Store.Profiles()

	if n.JSON {
		out := n.Output
		if out == nil {
			out = &options.OutputOptions{JSON: true}
		}
		return out.PrintJSON(profiles)
	}

	pp := printers.PrettyPrint{Out: color.Output, Assets: n.Config.Assets, Links: n.Links}
	_, _ = fmt.Fprintln(color.Output, "")
	pp.TitleWithCount(fetcher.String(), len(profiles))
	pp.Profiles(profiles...)
	return nil
}
