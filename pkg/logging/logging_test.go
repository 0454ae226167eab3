package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	for in, want := range map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
	} {
		if err := SetLevel(in); err != nil {
			t.Fatalf("SetLevel(%q): %v", in, err)
		}
		if Log.GetLevel() != want {
			t.Fatalf("SetLevel(%q) = %v, want %v", in, Log.GetLevel(), want)
		}
	}
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fip.log")
	closer, err := ToFile(path)
	if err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	For("test").Info("hello from the deck")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "hello from the deck") || !strings.Contains(string(b), "component=test") {
		t.Fatalf("unexpected log contents: %s", b)
	}
}
