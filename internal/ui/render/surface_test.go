package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}

func rowText(scr tcell.SimulationScreen, y int) string {
	cells, w, _ := scr.GetContents()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, runes...)
	}
	return string(out)
}

func TestScreenSurfaceWritesAndClips(t *testing.T) {
	scr := newSimScreen(t, 6, 3)
	s := NewScreenSurface(scr)

	s.MoveTo(0, 0)
	s.ClearRow()
	s.WriteRow("hello world", tcell.StyleDefault)
	s.ClearRow()
	s.WriteRow("ok", tcell.StyleDefault)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := rowText(scr, 0); got != "hello " {
		t.Fatalf("row 0=%q", got)
	}
	if got := rowText(scr, 1); got != "ok    " {
		t.Fatalf("row 1=%q", got)
	}
}

func TestScreenSurfaceClearRowRemovesOldText(t *testing.T) {
	scr := newSimScreen(t, 5, 2)
	s := NewScreenSurface(scr)
	s.MoveTo(0, 0)
	s.WriteRow("abcde", tcell.StyleDefault)
	s.MoveTo(0, 0)
	s.ClearRow()
	s.WriteRow("x", tcell.StyleDefault)
	_ = s.Flush()
	if got := rowText(scr, 0); got != "x    " {
		t.Fatalf("row 0=%q", got)
	}
}

func TestScreenSurfaceCursor(t *testing.T) {
	scr := newSimScreen(t, 10, 4)
	s := NewScreenSurface(scr)
	s.ShowCursor(3, 2)
	_ = s.Flush()
	x, y, visible := scr.GetCursor()
	if !visible || x != 2 || y != 3 {
		t.Fatalf("cursor=(%d,%d,%v)", x, y, visible)
	}
}
