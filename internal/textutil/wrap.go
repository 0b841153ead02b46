package textutil

import "github.com/rivo/uniseg"

// CutRow splits text into the widest leading row that fits in width columns
// and the remainder. A row always holds at least one grapheme cluster so a
// cluster wider than width still makes progress. Clusters are never split.
func CutRow(text string, width int) (row, rest string) {
	if width < 1 {
		panic("textutil: row width must be positive")
	}
	if text == "" {
		return "", ""
	}
	if isASCII(text) {
		if len(text) <= width {
			return text, ""
		}
		return text[:width], text[width:]
	}

	used := 0
	end := 0
	state := -1
	remaining := text
	for remaining != "" {
		cluster, next, w, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		if end > 0 && used+w > width {
			break
		}
		used += w
		end += len(cluster)
		remaining = next
		state = newState
	}
	return text[:end], text[end:]
}

// RowCount reports how many rows of width columns text wraps into. Empty
// text still takes one row.
func RowCount(text string, width int) int {
	if width < 1 {
		panic("textutil: row width must be positive")
	}
	if isASCII(text) {
		if len(text) == 0 {
			return 1
		}
		return (len(text) + width - 1) / width
	}

	rows := 0
	rest := text
	for {
		_, rest = CutRow(rest, width)
		rows++
		if rest == "" {
			return rows
		}
	}
}

// Rows calls yield for every wrapped row of text, stopping early when yield
// returns false. It reports whether iteration ran to completion.
func Rows(text string, width int, yield func(string) bool) bool {
	if text == "" {
		return yield("")
	}
	rest := text
	for rest != "" {
		var row string
		row, rest = CutRow(rest, width)
		if !yield(row) {
			return false
		}
	}
	return true
}
