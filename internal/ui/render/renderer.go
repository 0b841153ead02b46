package render

import (
	textutil "github.com/kk-code-lab/kom/internal/textutil"
	pagerui "github.com/kk-code-lab/kom/internal/ui/pager"
	"github.com/mattn/go-runewidth"
)

// Renderer draws the pager onto a Surface.
type Renderer struct {
	surface Surface
	theme   ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{
		surface: surface,
		theme:   GetColorTheme(),
	}
}

// Render redraws every content row and the status row.
func (r *Renderer) Render(ctx *pagerui.Context) error {
	page := ctx.Viewport.PageSize()
	rows := ctx.VisibleRows()
	content := r.theme.contentStyle()

	r.surface.MoveTo(0, 0)
	for i := 0; i < page; i++ {
		r.surface.ClearRow()
		text := ""
		if i < len(rows) {
			text = rows[i]
		}
		r.surface.WriteRow(text, content)
	}

	r.drawStatusLine(ctx.CommandLine, page, ctx.Viewport.Width())
	return r.surface.Flush()
}

func (r *Renderer) drawStatusLine(cl *pagerui.CommandLine, row, width int) {
	r.surface.MoveTo(row, 0)
	r.surface.ClearRow()

	switch cl.Mode() {
	case pagerui.ModeFilename:
		r.surface.WriteRow(textutil.SanitizeTerminalText(cl.Filename()), r.theme.bannerStyle())
		r.surface.HideCursor()
	case pagerui.ModeEnd:
		r.surface.WriteRow(cl.StatusText(), r.theme.bannerStyle())
		r.surface.HideCursor()
	case pagerui.ModeSearch:
		entry, _ := cl.Search()
		text := textutil.SanitizeTerminalText(entry.Text())
		r.surface.WriteRow("/"+text, r.theme.promptStyle())
		r.surface.ShowCursor(row, searchCursorColumn(entry, width))
	default:
		r.surface.WriteRow(cl.StatusText(), r.theme.promptStyle())
		r.surface.HideCursor()
	}
}

// searchCursorColumn is the 0-based column of the search cursor: one past
// the "/" plus the width of the text before the cursor.
func searchCursorColumn(entry *pagerui.SearchEntry, width int) int {
	before := []rune(entry.Text())[:entry.Cursor()]
	col := 1 + runewidth.StringWidth(string(before))
	return min(col, max(width-1, 0))
}
