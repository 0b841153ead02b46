package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText rewrites runes that would move the cursor or change
// terminal state into visible placeholders. C0 controls and DEL use caret
// notation (ESC becomes "^["), format runes such as bidi overrides and
// zero-width joiners become "<U+XXXX>". Tabs must be expanded beforehand;
// any left over are shown as "^I".
func SanitizeTerminalText(text string) string {
	if !needsSanitizing(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r < 0x20:
			b.WriteByte('^')
			b.WriteByte(byte(r) + '@')
		case r == 0x7f:
			b.WriteString("^?")
		case isHiddenRune(r):
			fmt.Fprintf(&b, "<U+%04X>", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(text string) bool {
	for _, r := range text {
		if r < 0x20 || r == 0x7f || isHiddenRune(r) {
			return true
		}
	}
	return false
}

// isHiddenRune reports C1 controls and invisible format runes. The zero-width
// joiner is kept so emoji sequences still render as one cluster.
func isHiddenRune(r rune) bool {
	if r >= 0x80 && r < 0xa0 {
		return true
	}
	return r != 0x200d && unicode.Is(unicode.Cf, r)
}

// DisplayLine prepares a raw source line for wrapping and drawing.
func DisplayLine(raw string, tabWidth int) string {
	return SanitizeTerminalText(ExpandTabs(raw, tabWidth))
}
