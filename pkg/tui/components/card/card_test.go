package card

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/fip/pkg/profile"
	"tableflip.dev/fip/pkg/tui/theme"
)

func TestViewShowsProfile(t *testing.T) {
	m := New(theme.Default().Card, profile.DefaultAssets())
	m.SetWidth(60)
	p := profile.Profile{
		SlotSchedule: "10:00",
		Category:     "Junior",
		FirstName:    "Ana",
		LastName:     "Lima",
		Flag:         "BR",
		Photo:        "ana.png",
		AgeOnEvent:   "14",
	}
	view := m.View(p, Nav{PrevDisabled: true})
	for _, want := range []string{"10:00 · JUNIOR", "Ana Lima", "BR · 14 yrs", "/fip/participants-w/ana.png", "‹ prev", "next ›"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in card:\n%s", want, view)
		}
	}
	for _, line := range strings.Split(view, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 60 {
			t.Fatalf("line width %d exceeds card width: %q", w, line)
		}
	}
}

func TestViewFallsBackForMissingFields(t *testing.T) {
	m := New(theme.Default().Card, profile.DefaultAssets())
	view := m.View(profile.Profile{}, Nav{PrevDisabled: true, NextDisabled: true})
	if !strings.Contains(view, "Unnamed participant") {
		t.Fatalf("expected placeholder name:\n%s", view)
	}
	if strings.Contains(view, "photo") {
		t.Fatalf("unexpected asset line for empty profile:\n%s", view)
	}
}

func TestEmpty(t *testing.T) {
	m := New(theme.Default().Card, profile.DefaultAssets())
	if view := m.Empty(""); !strings.Contains(view, "No participants loaded.") {
		t.Fatalf("unexpected empty view:\n%s", view)
	}
}
