package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/kom/internal/logger"
	inputui "github.com/kk-code-lab/kom/internal/ui/input"
	pagerui "github.com/kk-code-lab/kom/internal/ui/pager"
	renderui "github.com/kk-code-lab/kom/internal/ui/render"
)

// NewApplication takes over the terminal and loads the first screen of
// input. The terminal size is read once here.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	app, err := newApplication(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// newApplication wires the pager to an initialised screen.
func newApplication(screen tcell.Screen, opts Options) (*Application, error) {
	if opts.Mouse {
		screen.EnableMouse()
	}

	w, h := screen.Size()
	ctx, err := pagerui.NewContext(w, h, opts.Reader, opts.TabWidth, opts.Name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Viewport.Fill(); err != nil {
		return nil, err
	}

	log := logger.Named("app")
	log.WithFields(logger.Fields{"width": w, "height": h, "name": opts.Name}).Debug("pager started")

	return &Application{
		screen:   screen,
		ctx:      ctx,
		renderer: renderui.NewRenderer(renderui.NewScreenSurface(screen)),
		input:    inputui.NewInputHandler(),
		mouse:    opts.Mouse,
		log:      log,
	}, nil
}

// Run draws the first screen and then handles events one at a time until
// the user quits or the event source is shut down. Events are applied in
// arrival order and each change is drawn before the next event is read.
func (app *Application) Run() error {
	if err := app.renderer.Render(app.ctx); err != nil {
		return err
	}
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			app.log.Debug("event source closed")
			return nil
		}
		quit, err := app.handleEvent(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handleEvent translates and applies a single event, redrawing when the
// visible state changed. It reports whether the loop should stop.
func (app *Application) handleEvent(ev tcell.Event) (bool, error) {
	action := app.input.ProcessEvent(ev, app.ctx.Mode())

	switch action.(type) {
	case pagerui.QuitAction:
		return true, nil
	case pagerui.SuspendAction:
		return false, app.suspend()
	}

	changed, err := app.ctx.Apply(action)
	if err != nil {
		return false, fmt.Errorf("apply %T: %w", action, err)
	}
	if !changed {
		return false, nil
	}
	return false, app.renderer.Render(app.ctx)
}

// suspend hands the terminal back to the shell and redraws once the
// process is continued.
func (app *Application) suspend() error {
	if err := app.screen.Suspend(); err != nil {
		app.log.WithError(err).Warn("suspend failed")
		return nil
	}
	stopProcess()
	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("resume terminal: %w", err)
	}
	if app.mouse {
		app.screen.EnableMouse()
	}
	app.screen.Sync()
	return app.renderer.Render(app.ctx)
}
