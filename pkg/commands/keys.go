package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fip/pkg/runner/key"
)

func addKeys(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the keys the user interface understands",
		Example: `
fip keys
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			k := key.Key{Trigger: cfg.Trigger}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
