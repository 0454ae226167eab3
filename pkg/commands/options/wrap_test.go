package options

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("unexpected wrap %q", got)
	}
	for _, line := range strings.Split(Wrap80(strings.Repeat("word ", 40)), "\n") {
		if len(line) > HelpWidth {
			t.Fatalf("line longer than %d: %q", HelpWidth, line)
		}
	}
}

func TestWrapCountsColumnsNotBytes(t *testing.T) {
	// "é" is two bytes but one column wide.
	got := Wrap("café café", 9)
	if got != "café café" {
		t.Fatalf("unexpected wrap %q", got)
	}
	for _, line := range strings.Split(Wrap("步骤 上一位 下一位 选手", 8), "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 8 {
			t.Fatalf("line %q is %d columns wide", line, w)
		}
	}
}

func TestWrapKeepsParagraphs(t *testing.T) {
	got := Wrap("Step through participants.\n\nArrow keys move the card.", 40)
	if got != "Step through participants.\n\nArrow keys move the card." {
		t.Fatalf("unexpected wrap %q", got)
	}
	if got := Wrap("   ", 10); got != "   " {
		t.Fatalf("blank text changed to %q", got)
	}
}

func TestWrapLongWord(t *testing.T) {
	got := Wrap("see https://sheets.googleapis.com/v4 now", 10)
	if got != "see\nhttps://sheets.googleapis.com/v4\nnow" {
		t.Fatalf("unexpected wrap %q", got)
	}
}
