package info

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/fip/pkg/config"
	"tableflip.dev/fip/pkg/source"
	"tableflip.dev/fip/pkg/timeutil"
)

// Info prints the resolved configuration.
type Info struct {
	Config *config.Config
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		return fmt.Errorf("no configuration loaded")
	}
	c := n.Config
	out := color.Output

	if override := os.Getenv("FIP_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "FIP_CONFIG_PATH found on env, using ", override)
	}
	file := c.File
	if file == "" {
		file = "(none, using environment and defaults)"
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
	tbl.AddRow("config file", file)
	tbl.AddRow(config.KeySource, string(c.Source))
	switch c.Source {
	case source.KindDelimited:
		tbl.AddRow(config.KeyCSVLocation, c.Delimited.Location)
		tbl.AddRow(config.KeyCSVWatch, fmt.Sprint(c.Watch))
	default:
		tbl.AddRow(config.KeySheetID, c.Sheet.ID)
		tbl.AddRow(config.KeySheetRange, c.Sheet.Range)
		tbl.AddRow(config.KeySheetKey, Mask(c.Sheet.APIKey))
		tbl.AddRow(config.KeySheetEndpoint, c.Sheet.Endpoint)
	}
	tbl.AddRow(config.KeyHTTPProxy, c.HTTP.Proxy)
	tbl.AddRow(config.KeyHTTPTimeout, timeutil.FormatTimeout(c.HTTP.Timeout))
	tbl.AddRow(config.KeyAssetsBase, c.Assets.Base)
	tbl.AddRow(config.KeyTrigger, c.Trigger.String())
	tbl.AddRow(config.KeyLogLevel, c.LogLevel)
	tbl.AddRow(config.KeyLogFile, c.LogFile)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	if err := c.Validate(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(out, "not ready: %v\n", err)
		return nil
	}
	_, _ = color.New(color.FgGreen).Fprintln(out, "ready")
	return nil
}

// Mask hides all but the last four characters of a secret.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
