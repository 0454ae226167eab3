package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fip/pkg/commands/options"
	"tableflip.dev/fip/pkg/runner/ui"
	"tableflip.dev/fip/pkg/shortcut"
)

func addUI(topLevel *cobra.Command) {
	uo := &options.UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
fip ui
fip ui --view roster
fip ui --trigger press --log-file /tmp/fip.log
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if uo.Trigger != "" {
				if cfg.Trigger, err = shortcut.ParsePhase(uo.Trigger); err != nil {
					return err
				}
			}
			if uo.LogFile != "" {
				cfg.LogFile = uo.LogFile
			}
			if uo.Watch {
				cfg.Watch = true
			}
			i := ui.UI{Config: cfg, View: uo.View}
			return i.Do(context.Background())
		},
	}
	options.AddUIArgs(cmd, uo)

	topLevel.AddCommand(cmd)
}
