package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Surface is the drawing primitive the renderer needs: a cursor that can be
// placed anywhere, row clearing and row writing.
type Surface interface {
	// MoveTo places the write position at row, col (0-based).
	MoveTo(row, col int)
	// ClearRow blanks the row the write position is on.
	ClearRow()
	// WriteRow draws text at the write position, clipped to the surface
	// width, then moves the write position to the start of the next row.
	WriteRow(text string, style tcell.Style)
	// ShowCursor makes the terminal cursor visible at row, col.
	ShowCursor(row, col int)
	HideCursor()
	// Flush pushes everything drawn so far to the terminal.
	Flush() error
}

// ScreenSurface draws onto a tcell screen.
type ScreenSurface struct {
	screen tcell.Screen
	row    int
	col    int
}

func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

func (s *ScreenSurface) MoveTo(row, col int) {
	s.row = row
	s.col = col
}

func (s *ScreenSurface) ClearRow() {
	w, _ := s.screen.Size()
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, s.row, ' ', nil, tcell.StyleDefault)
	}
}

func (s *ScreenSurface) WriteRow(text string, style tcell.Style) {
	w, _ := s.screen.Size()
	x := s.col
	state := -1
	rest := text
	for rest != "" && x < w {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width <= 0 {
			width = 1
		}
		if x+width > w {
			break
		}
		runes := []rune(cluster)
		s.screen.SetContent(x, s.row, runes[0], runes[1:], style)
		x += width
	}
	s.row++
	s.col = 0
}

func (s *ScreenSurface) ShowCursor(row, col int) {
	s.screen.ShowCursor(col, row)
}

func (s *ScreenSurface) HideCursor() {
	s.screen.HideCursor()
}

func (s *ScreenSurface) Flush() error {
	s.screen.Show()
	return nil
}
