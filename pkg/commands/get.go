package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/fip/pkg/commands/options"
	"tableflip.dev/fip/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch the participant list once and print it.",
		Example: `
fip get
fip get --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				Config: cfg,
				JSON:   oo.JSON,
				Links:  isatty.IsTerminal(os.Stdout.Fd()),
				Output: oo,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
