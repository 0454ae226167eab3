package ui

import (
	"context"

	"tableflip.dev/fip/pkg/app"
	"tableflip.dev/fip/pkg/config"
	"tableflip.dev/fip/pkg/logging"
	"tableflip.dev/fip/pkg/shortcut"
	teaui "tableflip.dev/fip/pkg/tui/app"
)

// UI runs the terminal interface over the configured source.
type UI struct {
	Config *config.Config
	View   string
}

func (d *UI) Do(ctx context.Context) error {
	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	closer, err := logging.ToFile(d.Config.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	fetcher, err := d.Config.Fetcher()
	if err != nil {
		return err
	}
	session := app.NewSession(fetcher, shortcut.WithTrigger(d.Config.Trigger))
	defer session.Close()

	watch, _ := d.Config.WatchPath()
	log := logging.For("ui")
	log.WithField("source", fetcher.String()).WithField("trigger", d.Config.Trigger).Info("starting")

	return teaui.Run(ctx, session, teaui.Options{
		View:      d.View,
		WatchPath: watch,
		Assets:    d.Config.Assets,
	})
}
