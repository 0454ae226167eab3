package statusbar

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/fip/pkg/store"
	"tableflip.dev/fip/pkg/tui/theme"
)

func TestViewSegments(t *testing.T) {
	m := New(theme.Default().Footer)
	m.SetPosition(2, 5)
	m.SetStatus(store.FetchStatus{Phase: store.PhaseSuccess})
	view := m.View(0)
	if !strings.Contains(view, "3/5") || !strings.Contains(view, "shortcuts on") {
		t.Fatalf("unexpected footer %q", view)
	}

	m.SetShortcuts(false)
	m.SetStatus(store.FetchStatus{Phase: store.PhaseError, Message: "HTTP error: request failed: 403 Forbidden"})
	view = m.View(0)
	if !strings.Contains(view, "403 Forbidden") || !strings.Contains(view, "shortcuts off") {
		t.Fatalf("expected error and disabled shortcuts, got %q", view)
	}

	m.SetStatus(store.FetchStatus{Phase: store.PhaseLoading})
	m.SetPosition(0, 0)
	if view = m.View(0); !strings.Contains(view, "Loading") || strings.Contains(view, "no participants") {
		t.Fatalf("unexpected loading footer %q", view)
	}
}

func TestViewClipsToWidth(t *testing.T) {
	m := New(theme.Default().Footer)
	m.SetPosition(0, 100)
	m.SetHelp(strings.Repeat("←/→ step ", 20))
	view := m.View(40)
	if w := ansi.PrintableRuneWidth(view); w > 40 {
		t.Fatalf("footer width %d exceeds 40", w)
	}
}
