package options

import (
	"github.com/spf13/cobra"
)

// ConfigOptions are shared by every command that reads settings.
type ConfigOptions struct {
	Path     string
	LogLevel string
}

func AddConfigArgs(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "config", "",
		Wrap80("Config file (default is .fip.yaml in $FIP_CONFIG_PATH, the working directory or $HOME)."))
	cmd.PersistentFlags().StringVar(&o.LogLevel, "loglevel", "",
		"Log level: debug, info, warn, error or fatal.")
}
