package pager

import (
	"testing"
)

func newTestContext(t *testing.T, lines []string, name string) *Context {
	t.Helper()
	ctx, err := NewContext(10, 5, &sliceReader{lines: lines}, 0, name)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.Viewport.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	return ctx
}

func apply(t *testing.T, ctx *Context, action Action) bool {
	t.Helper()
	changed, err := ctx.Apply(action)
	if err != nil {
		t.Fatalf("Apply(%T): %v", action, err)
	}
	return changed
}

func TestApplySearchSequence(t *testing.T) {
	ctx := newTestContext(t, numberedLines(3), "")

	if !apply(t, ctx, EnterSearchAction{}) || ctx.Mode() != ModeSearch {
		t.Fatalf("expected search mode, got %v", ctx.Mode())
	}
	apply(t, ctx, SearchInsertAction{Char: 'a'})
	apply(t, ctx, SearchInsertAction{Char: 'b'})
	apply(t, ctx, SearchCursorLeftAction{})
	apply(t, ctx, SearchBackspaceAction{})

	entry, ok := ctx.CommandLine.Search()
	if !ok || entry.Text() != "b" || entry.Cursor() != 0 {
		t.Fatalf("unexpected entry %q@%d", entry.Text(), entry.Cursor())
	}
	if apply(t, ctx, SearchBackspaceAction{}) {
		t.Fatalf("backspace at cursor 0 should not redraw")
	}
	if !apply(t, ctx, ExitSearchAction{}) || ctx.Mode() != ModeNormal {
		t.Fatalf("expected normal mode after exit, got %v", ctx.Mode())
	}
}

func TestApplyIgnoresSearchEditsOutsideSearch(t *testing.T) {
	ctx := newTestContext(t, numberedLines(3), "")
	for _, action := range []Action{
		SearchInsertAction{Char: 'x'},
		SearchBackspaceAction{},
		SearchDeleteAction{},
		SearchCursorLeftAction{},
		SearchCursorRightAction{},
	} {
		if apply(t, ctx, action) {
			t.Fatalf("%T changed state in normal mode", action)
		}
	}
	if ctx.Mode() != ModeNormal {
		t.Fatalf("mode changed to %v", ctx.Mode())
	}
}

func TestApplyScrollActions(t *testing.T) {
	ctx := newTestContext(t, numberedLines(20), "file.txt")

	if !apply(t, ctx, ScrollDownScreenAction{}) || ctx.Viewport.Offset() != 4 {
		t.Fatalf("offset=%d", ctx.Viewport.Offset())
	}
	if ctx.Mode() != ModeNormal {
		t.Fatalf("banner should collapse, mode=%v", ctx.Mode())
	}
	apply(t, ctx, ScrollDownLineAction{})
	apply(t, ctx, ScrollUpLineAction{})
	apply(t, ctx, ScrollUpScreenAction{})
	if ctx.Viewport.Offset() != 0 {
		t.Fatalf("offset=%d want 0", ctx.Viewport.Offset())
	}
}

func TestApplyUnknownActionErrors(t *testing.T) {
	ctx := newTestContext(t, nil, "")
	if _, err := ctx.Apply(struct{}{}); err == nil {
		t.Fatalf("expected error for unknown action")
	}
	if changed, err := ctx.Apply(nil); changed || err != nil {
		t.Fatalf("nil action: changed=%v err=%v", changed, err)
	}
}
