// Package config loads fip settings from .env, a .fip.yaml file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/fip/pkg/logging"
	"tableflip.dev/fip/pkg/profile"
	"tableflip.dev/fip/pkg/shortcut"
	"tableflip.dev/fip/pkg/source"
	"tableflip.dev/fip/pkg/timeutil"
)

// Keys understood in the config file and as FIP_ environment variables.
const (
	KeySource        = "source"
	KeySheetID       = "sheet.id"
	KeySheetRange    = "sheet.range"
	KeySheetKey      = "sheet.key"
	KeySheetEndpoint = "sheet.endpoint"
	KeyCSVLocation   = "csv.location"
	KeyCSVWatch      = "csv.watch"
	KeyHTTPProxy     = "http.proxy"
	KeyHTTPTimeout   = "http.timeout"
	KeyAssetsBase    = "assets.base"
	KeyTrigger       = "shortcuts.trigger"
	KeyLogLevel      = "log.level"
	KeyLogFile       = "log.file"
)

// legacy maps keys to the environment names the web build used.
var legacy = map[string]string{
	KeySheetID:    "VITE_SHEET_ID",
	KeySheetRange: "VITE_SHEET_RANGE",
	KeySheetKey:   "VITE_SHEET_API_KEY",
}

// Config is the resolved settings set.
type Config struct {
	Source    source.Kind
	Sheet     source.SheetConfig
	Delimited source.DelimitedConfig
	Watch     bool
	HTTP      source.HTTPConfig
	Assets    profile.Assets
	Trigger   shortcut.Phase
	LogLevel  string
	LogFile   string

	// File is the config file that was read, if any.
	File string
}

// Load resolves settings. An explicit path must exist; otherwise .fip.yaml
// is searched in $FIP_CONFIG_PATH, the working directory and $HOME.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.For("config").WithError(err).Warn("ignoring .env")
	}

	v := viper.New()
	v.SetDefault(KeySource, string(source.KindSheets))
	v.SetDefault(KeySheetEndpoint, source.DefaultSheetsEndpoint)
	v.SetDefault(KeyHTTPTimeout, "30s")
	v.SetDefault(KeyAssetsBase, profile.DefaultBasePath)
	v.SetDefault(KeyTrigger, shortcut.PhaseRelease.String())
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix("FIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".fip") // .yaml is implicit
		v.SetConfigType("yaml")
		if override := os.Getenv("FIP_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("config: reading %s: %w", describePath(path), err)
		}
	}

	for key, env := range legacy {
		if v.GetString(key) != "" {
			continue
		}
		if val, ok := os.LookupEnv(env); ok {
			v.Set(key, val)
		}
	}

	return decode(v)
}

func describePath(path string) string {
	if path == "" {
		return ".fip.yaml"
	}
	return path
}

func decode(v *viper.Viper) (*Config, error) {
	kind, err := source.ParseKind(v.GetString(KeySource))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeySource, err)
	}
	trigger, err := shortcut.ParsePhase(v.GetString(KeyTrigger))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyTrigger, err)
	}
	timeout, err := timeutil.ParseTimeout(v.GetString(KeyHTTPTimeout))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyHTTPTimeout, err)
	}
	location := v.GetString(KeyCSVLocation)
	if location != "" {
		if expanded, err := homedir.Expand(location); err == nil {
			location = expanded
		}
	}
	logFile := v.GetString(KeyLogFile)
	if logFile != "" {
		if expanded, err := homedir.Expand(logFile); err == nil {
			logFile = expanded
		}
	}

	return &Config{
		Source: kind,
		Sheet: source.SheetConfig{
			ID:       v.GetString(KeySheetID),
			Range:    v.GetString(KeySheetRange),
			APIKey:   v.GetString(KeySheetKey),
			Endpoint: v.GetString(KeySheetEndpoint),
		},
		Delimited: source.DelimitedConfig{Location: location},
		Watch:     v.GetBool(KeyCSVWatch),
		HTTP: source.HTTPConfig{
			Proxy:   v.GetString(KeyHTTPProxy),
			Timeout: timeout,
		},
		Assets:   profile.AssetsAt(v.GetString(KeyAssetsBase)),
		Trigger:  trigger,
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  logFile,
		File:     v.ConfigFileUsed(),
	}, nil
}

// Validate checks the settings the selected source needs.
func (c *Config) Validate() error {
	switch c.Source {
	case source.KindDelimited:
		return c.Delimited.Validate()
	default:
		return c.Sheet.Validate()
	}
}

// Fetcher builds the configured source. Missing values are not checked
// here; the fetcher reports them as a ConfigError on its first Fetch.
func (c *Config) Fetcher() (source.Fetcher, error) {
	client, err := source.NewClient(c.HTTP)
	if err != nil {
		return nil, err
	}
	switch c.Source {
	case source.KindDelimited:
		return source.NewDelimited(c.Delimited, client), nil
	default:
		return source.NewSheets(c.Sheet, client), nil
	}
}

// WatchPath returns the local file to watch, if watching applies.
func (c *Config) WatchPath() (string, bool) {
	if !c.Watch || c.Source != source.KindDelimited {
		return "", false
	}
	return c.Delimited.LocalPath()
}
