package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fip/pkg/commands/options"
	"tableflip.dev/fip/pkg/config"
	"tableflip.dev/fip/pkg/logging"
)

var (
	oo = &options.OutputOptions{}
	co = &options.ConfigOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "fip",
		Short: options.Wrap80("Show competition participants one at a time, stepping with the arrow keys."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddConfigArgs(cmd, co)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addKeys(topLevel)
	addConfig(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}

// loadConfig resolves settings and applies the log level, with --loglevel
// taking precedence over log.level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(co.Path)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if co.LogLevel != "" {
		level = co.LogLevel
	}
	if err := logging.SetLevel(level); err != nil {
		return nil, err
	}
	return cfg, nil
}
