package printers

import (
	"bytes"
	"strings"
	"testing"

	"tableflip.dev/fip/pkg/profile"
)

func TestProfilesTable(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Assets: profile.DefaultAssets()}
	pp.TitleWithCount("sheets", 2)
	pp.Profiles(
		profile.Profile{SlotSchedule: "10:00", FirstName: "Ana", LastName: "Lima", Flag: "BR", Photo: "ana.png", AgeOnEvent: "14"},
		profile.Profile{SlotSchedule: "10:05", FullName: "Bo Chen"},
	)
	out := buf.String()
	for _, want := range []string{"2 participants", "Ana Lima", "Bo Chen", "/fip/participants-w/ana.png", "10:05"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestProfilesHyperlinks(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Assets: profile.DefaultAssets(), Links: true}
	pp.Profiles(profile.Profile{FullName: "Ana Lima", Photo: "ana.png"})
	if !strings.Contains(buf.String(), "\x1b]8;;/fip/participants-w/ana.png") {
		t.Fatalf("expected OSC 8 hyperlink, got %q", buf.String())
	}
}

func TestProfilesEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Profiles()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}
