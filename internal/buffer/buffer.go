// Package buffer holds the lines read from the paged source and derives the
// terminal-width rows they wrap into.
package buffer

import (
	"errors"
	"io"
	"iter"

	textutil "github.com/kk-code-lab/kom/internal/textutil"
)

// Buffer is an append-only log of the logical lines read so far. Lines are
// pulled from the reader on demand and never modified or dropped.
type Buffer struct {
	reader   LineReader
	tabWidth int
	lines    []string
	display  []string
	eof      bool
	index    rowIndex
}

// rowIndex caches per-line row counts for the last width asked about.
type rowIndex struct {
	width  int
	counts []int
	total  int
}

// New creates an empty buffer reading from reader. tabWidth <= 0 selects
// textutil.DefaultTabWidth.
func New(reader LineReader, tabWidth int) *Buffer {
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}
	return &Buffer{
		reader:   reader,
		tabWidth: tabWidth,
	}
}

// AppendLine reads the next logical line. ok is false once the source is
// exhausted; the reader is not consulted again after that.
func (b *Buffer) AppendLine() (line string, ok bool, err error) {
	if b.eof {
		return "", false, nil
	}
	line, err = b.reader.ReadLine()
	if errors.Is(err, io.EOF) {
		b.eof = true
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	shown := textutil.DisplayLine(line, b.tabWidth)
	b.lines = append(b.lines, line)
	b.display = append(b.display, shown)
	if b.index.width > 0 {
		rows := WrappedRowCount(shown, b.index.width)
		b.index.counts = append(b.index.counts, rows)
		b.index.total += rows
	}
	return line, true, nil
}

// EOF reports whether the source has been exhausted.
func (b *Buffer) EOF() bool {
	return b.eof
}

// LineCount returns the number of logical lines read so far.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns logical line i as read from the source.
func (b *Buffer) Line(i int) string {
	return b.lines[i]
}

// Len returns the total number of wrapped rows across all buffered lines.
func (b *Buffer) Len(width int) int {
	b.indexFor(width)
	return b.index.total
}

// WrappedRowCount reports how many rows line occupies at width: the ceiling
// of its display width over width, and never less than one.
func WrappedRowCount(line string, width int) int {
	return textutil.RowCount(line, width)
}

// WrappedLines yields every wrapped row of the buffer in order. The sequence
// is derived afresh on each call.
func (b *Buffer) WrappedLines(width int) iter.Seq[string] {
	return b.WrappedLinesFrom(width, 0)
}

// WrappedLinesFrom is WrappedLines with the first skip rows dropped.
func (b *Buffer) WrappedLinesFrom(width, skip int) iter.Seq[string] {
	if width < 1 {
		panic("buffer: wrap width must be positive")
	}
	b.indexFor(width)
	display := b.display
	counts := b.index.counts

	return func(yield func(string) bool) {
		remaining := skip
		first := 0
		for first < len(counts) && remaining >= counts[first] {
			remaining -= counts[first]
			first++
		}
		for i := first; i < len(display); i++ {
			done := textutil.Rows(display[i], width, func(row string) bool {
				if remaining > 0 {
					remaining--
					return true
				}
				return yield(row)
			})
			if !done {
				return
			}
		}
	}
}

func (b *Buffer) indexFor(width int) {
	if width < 1 {
		panic("buffer: wrap width must be positive")
	}
	if b.index.width == width && len(b.index.counts) == len(b.display) {
		return
	}
	b.index = rowIndex{width: width, counts: make([]int, len(b.display))}
	for i, line := range b.display {
		rows := WrappedRowCount(line, width)
		b.index.counts[i] = rows
		b.index.total += rows
	}
}
