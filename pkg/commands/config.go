package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fip/pkg/runner/info"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved settings and whether the source can be fetched.",
		Example: `
fip config
FIP_SOURCE=csv FIP_CSV_LOCATION=./roster.csv fip config
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := info.Info{Config: cfg}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
