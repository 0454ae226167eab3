package options

import (
	"github.com/spf13/cobra"
)

// UIOptions
type UIOptions struct {
	View    string
	Trigger string
	LogFile string
	Watch   bool
}

func AddUIArgs(cmd *cobra.Command, o *UIOptions) {
	cmd.Flags().StringVar(&o.View, "view", "stage",
		`Starting view, "stage" or "roster".`)
	cmd.Flags().StringVar(&o.Trigger, "trigger", "",
		Wrap80(`When arrow shortcuts fire, "release" or "press". Overrides shortcuts.trigger.`))
	cmd.Flags().StringVar(&o.LogFile, "log-file", "",
		Wrap80("Append logs to this file while the UI runs. Overrides log.file; logs are discarded when neither is set."))
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		Wrap80("Re-fetch when a local csv source changes. Same as csv.watch."))
}
