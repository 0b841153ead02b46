package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/kom/internal/logger"
	pagerui "github.com/kk-code-lab/kom/internal/ui/pager"
)

// InputHandler converts tcell events to pager actions. Which keys mean what
// depends on the status-row mode.
type InputHandler struct {
	log *logger.LogEntry
}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{log: logger.Named("input")}
}

// ProcessEvent returns the action for ev, or nil when the event means
// nothing in mode.
func (ih *InputHandler) ProcessEvent(ev tcell.Event, mode pagerui.Mode) pagerui.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlZ {
			return pagerui.SuspendAction{}
		}
		if mode == pagerui.ModeSearch {
			return ih.processSearchKey(ev)
		}
		return ih.processKeyEvent(ev)
	case *tcell.EventMouse:
		return ih.processMouseEvent(ev)
	default:
		ih.log.Debugf("unsupported event %T", ev)
		return nil
	}
}

// processKeyEvent handles keys outside search entry.
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) pagerui.Action {
	switch ev.Key() {
	case tcell.KeyDown:
		return pagerui.ScrollDownLineAction{}
	case tcell.KeyUp:
		return pagerui.ScrollUpLineAction{}
	case tcell.KeyPgDn, tcell.KeyCtrlV, tcell.KeyCtrlF:
		return pagerui.ScrollDownScreenAction{}
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		return pagerui.ScrollUpScreenAction{}
	case tcell.KeyRune:
	default:
		ih.log.WithField("key", ev.Name()).Debug("ignored key")
		return nil
	}

	switch ev.Rune() {
	case 'q':
		return pagerui.QuitAction{}
	case 'j':
		return pagerui.ScrollDownLineAction{}
	case 'k':
		return pagerui.ScrollUpLineAction{}
	case ' ', 'f':
		return pagerui.ScrollDownScreenAction{}
	case 'b':
		return pagerui.ScrollUpScreenAction{}
	case '/':
		return pagerui.EnterSearchAction{}
	}
	ih.log.WithField("key", ev.Name()).Debug("ignored key")
	return nil
}

// processSearchKey handles keys while the search entry has focus.
func (ih *InputHandler) processSearchKey(ev *tcell.EventKey) pagerui.Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return pagerui.ExitSearchAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return pagerui.SearchBackspaceAction{}
	case tcell.KeyDelete:
		return pagerui.SearchDeleteAction{}
	case tcell.KeyLeft:
		return pagerui.SearchCursorLeftAction{}
	case tcell.KeyRight:
		return pagerui.SearchCursorRightAction{}
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			return pagerui.SearchInsertAction{Char: r}
		}
	}
	ih.log.WithField("key", ev.Name()).Debug("ignored key in search")
	return nil
}

// processMouseEvent maps the wheel to line scrolling in every mode.
func (ih *InputHandler) processMouseEvent(ev *tcell.EventMouse) pagerui.Action {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return pagerui.ScrollUpLineAction{}
	case buttons&tcell.WheelDown != 0:
		return pagerui.ScrollDownLineAction{}
	default:
		return nil
	}
}
