package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces up to the next tab stop,
// counting columns the way the terminal will draw the preceding runes.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text) + tabWidth)
	column := 0
	for _, ru := range text {
		if ru != '\t' {
			builder.WriteRune(ru)
			column += max(runewidth.RuneWidth(ru), 0)
			continue
		}
		pad := tabWidth - column%tabWidth
		builder.WriteString(strings.Repeat(" ", pad))
		column += pad
	}
	return builder.String()
}

// DisplayWidth reports the number of terminal columns text occupies,
// measuring grapheme clusters rather than individual runes.
func DisplayWidth(text string) int {
	if isASCII(text) {
		return len(text)
	}
	return uniseg.StringWidth(text)
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			return false
		}
	}
	return true
}
