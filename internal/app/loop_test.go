package app

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/kom/internal/buffer"
	pagerui "github.com/kk-code-lab/kom/internal/ui/pager"
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

func numbered(n int) string {
	var sb strings.Builder
	for i := range n {
		sb.WriteString("line ")
		sb.WriteByte(byte('a' + i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func newTestApp(t *testing.T, scr tcell.Screen, src io.Reader, name string) *Application {
	t.Helper()
	app, err := newApplication(scr, Options{
		Reader:   buffer.NewLineReader(src, buffer.ReaderOptions{}),
		Name:     name,
		TabWidth: 4,
		Mouse:    true,
	})
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	return app
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
	return strings.TrimRight(string(out), " ")
}

func TestNewApplicationLoadsFirstPage(t *testing.T) {
	scr := newSimScreen(t, 20, 5)
	app := newTestApp(t, scr, strings.NewReader(numbered(10)), "notes.txt")

	ctx := app.Context()
	if got := ctx.Viewport.PageSize(); got != 4 {
		t.Fatalf("page size = %d, want 4", got)
	}
	if got := ctx.Mode(); got != pagerui.ModeFilename {
		t.Fatalf("mode = %v, want Filename", got)
	}
	want := []string{"line a", "line b", "line c", "line d"}
	if got := ctx.VisibleRows(); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("rows = %q, want %q", got, want)
	}
}

func TestNewApplicationRejectsTinyScreen(t *testing.T) {
	scr := newSimScreen(t, 20, 1)
	_, err := newApplication(scr, Options{
		Reader:   buffer.NewLineReader(strings.NewReader("x\n"), buffer.ReaderOptions{}),
		TabWidth: 4,
	})
	if !errors.Is(err, pagerui.ErrInvalidGeometry) {
		t.Fatalf("err = %v, want ErrInvalidGeometry", err)
	}
}

func TestRunAppliesEventsInOrderAndQuits(t *testing.T) {
	scr := newSimScreen(t, 20, 5)
	app := newTestApp(t, scr, strings.NewReader(numbered(10)), "notes.txt")

	scr.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := app.Context().Viewport.Offset(); got != 1 {
		t.Fatalf("offset = %d, want 1", got)
	}
	if got := rowText(scr, 0); got != "line b" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowText(scr, 4); got != ":" {
		t.Fatalf("status = %q, want \":\"", got)
	}
}

func TestRunShowsEndAtBottom(t *testing.T) {
	scr := newSimScreen(t, 20, 5)
	app := newTestApp(t, scr, strings.NewReader(numbered(6)), "")

	scr.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := app.Context().Mode(); got != pagerui.ModeEnd {
		t.Fatalf("mode = %v, want End", got)
	}
	if got := rowText(scr, 0); got != "line c" {
		t.Fatalf("row 0 = %q, want last page", got)
	}
	if got := rowText(scr, 4); got != "(END)" {
		t.Fatalf("status = %q, want (END)", got)
	}
}

func TestRunSearchEntryCapturesQ(t *testing.T) {
	scr := newSimScreen(t, 20, 5)
	app := newTestApp(t, scr, strings.NewReader(numbered(10)), "")

	for _, r := range "/qj" {
		scr.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := app.Context().Mode(); got != pagerui.ModeNormal {
		t.Fatalf("mode = %v, want Normal", got)
	}
	if got := app.Context().Viewport.Offset(); got != 0 {
		t.Fatalf("offset = %d; keys typed into search must not scroll", got)
	}
}

func TestHandleEventRendersSearchText(t *testing.T) {
	scr := newSimScreen(t, 20, 5)
	app := newTestApp(t, scr, strings.NewReader(numbered(10)), "")

	for _, r := range "/ab" {
		if quit, err := app.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); quit || err != nil {
			t.Fatalf("handleEvent(%q) = %v, %v", r, quit, err)
		}
	}
	if got := rowText(scr, 4); got != "/ab" {
		t.Fatalf("status = %q, want /ab", got)
	}
	x, y, visible := scr.GetCursor()
	if x != 3 || y != 4 || !visible {
		t.Fatalf("cursor = (%d,%d,%v), want (3,4,true)", x, y, visible)
	}
}

func TestHandleEventMouseWheel(t *testing.T) {
	scr := newSimScreen(t, 20, 5)
	app := newTestApp(t, scr, strings.NewReader(numbered(10)), "")

	down := tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)
	if _, err := app.handleEvent(down); err != nil {
		t.Fatalf("wheel down: %v", err)
	}
	if got := app.Context().Viewport.Offset(); got != 1 {
		t.Fatalf("offset = %d, want 1", got)
	}
}

func TestHandleEventPropagatesReadErrors(t *testing.T) {
	errBoom := errors.New("boom")
	scr := newSimScreen(t, 20, 3)
	src := io.MultiReader(strings.NewReader("a\nb\n"), iotest.ErrReader(errBoom))
	app := newTestApp(t, scr, src, "")

	_, err := app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}
