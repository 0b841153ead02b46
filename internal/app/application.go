package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/kom/internal/buffer"
	"github.com/kk-code-lab/kom/internal/logger"
	inputui "github.com/kk-code-lab/kom/internal/ui/input"
	pagerui "github.com/kk-code-lab/kom/internal/ui/pager"
	renderui "github.com/kk-code-lab/kom/internal/ui/render"
)

// Options describes one pager session.
type Options struct {
	Reader   buffer.LineReader
	Name     string
	TabWidth int
	Mouse    bool
}

// Application represents the running app.
type Application struct {
	screen   tcell.Screen
	ctx      *pagerui.Context
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	mouse    bool
	log      *logger.LogEntry
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// Context exposes the pager state, mostly for tests.
func (app *Application) Context() *pagerui.Context {
	return app.ctx
}
