// Package logging holds the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is shared by every package; components add a "component" field.
var Log = logrus.New()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

// SetLevel applies one of debug, info, warn, error or fatal.
func SetLevel(level string) error {
	// trace and panic are not used.
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "", "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		return fmt.Errorf("logging: unknown level %q", level)
	}
	return nil
}

// ToFile redirects log output to path, appending. An empty path discards
// output instead; the returned closer restores stderr.
func ToFile(path string) (io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		Log.SetOutput(io.Discard)
		return restore{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	Log.SetOutput(f)
	return restore{f: f}, nil
}

type restore struct {
	f *os.File
}

func (r restore) Close() error {
	Log.SetOutput(os.Stderr)
	if r.f != nil {
		return r.f.Close()
	}
	return nil
}
