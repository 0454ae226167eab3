package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"tableflip.dev/fip/pkg/logging"
)

const installPath = "tableflip.dev/fip@latest"

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade fip cli.",
		Example: `
fip upgrade
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ex := exec.Command("go", "install", installPath)
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				logging.For("upgrade").WithField("output", out.String()).Debug("go install failed")
				return fmt.Errorf("upgrade: %w: %s", err, bytes.TrimSpace(out.Bytes()))
			}
			fmt.Printf("%s\n", ex.String())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
