// Package options holds the flag sets shared by fip's commands.
package options

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// HelpWidth is the column fip wraps command and flag help at.
const HelpWidth = 80

// Wrap80 wraps help text at HelpWidth.
func Wrap80(text string) string {
	return Wrap(text, HelpWidth)
}

// Wrap reflows text on word boundaries so no line is wider than width
// terminal columns. Blank-line paragraph breaks are kept. A single word
// wider than width gets a line of its own.
func Wrap(text string, width int) string {
	paragraphs := strings.Split(strings.TrimSpace(text), "\n\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if w := wrapParagraph(p, width); w != "" {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return text
	}
	return strings.Join(out, "\n\n")
}

func wrapParagraph(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	left := width - ansi.PrintableRuneWidth(words[0])
	for _, word := range words[1:] {
		w := ansi.PrintableRuneWidth(word)
		if w+1 > left {
			b.WriteByte('\n')
			left = width - w
		} else {
			b.WriteByte(' ')
			left -= 1 + w
		}
		b.WriteString(word)
	}
	return b.String()
}
