package pager

import (
	"fmt"

	"github.com/kk-code-lab/kom/internal/buffer"
)

// Context is everything the event loop mutates. It is owned by that loop
// alone, so nothing in here is synchronised.
type Context struct {
	Viewport    *Viewport
	CommandLine *CommandLine
}

// NewContext builds the pager state for a width x height terminal. name is
// the banner shown until the first scroll; pass "" when reading stdin.
func NewContext(width, height int, reader buffer.LineReader, tabWidth int, name string) (*Context, error) {
	viewport, err := NewViewport(width, height, buffer.New(reader, tabWidth))
	if err != nil {
		return nil, err
	}
	return &Context{
		Viewport:    viewport,
		CommandLine: NewCommandLine(name),
	}, nil
}

// Mode is a shortcut for the command line's current mode.
func (c *Context) Mode() Mode {
	return c.CommandLine.Mode()
}

// VisibleRows returns the content rows currently on screen.
func (c *Context) VisibleRows() []string {
	return c.Viewport.VisibleRows()
}

// Apply performs action and reports whether the screen needs redrawing.
// Search editing actions arriving outside Search mode are ignored; the input
// layer never produces them there. QuitAction and SuspendAction are handled
// by the caller.
func (c *Context) Apply(action Action) (bool, error) {
	switch a := action.(type) {

	// ===== SCROLL =====

	case ScrollDownLineAction:
		return c.Viewport.ScrollDownLine(c.CommandLine)
	case ScrollUpLineAction:
		return c.Viewport.ScrollUpLine(c.CommandLine), nil
	case ScrollDownScreenAction:
		return c.Viewport.ScrollDownScreen(c.CommandLine)
	case ScrollUpScreenAction:
		return c.Viewport.ScrollUpScreen(c.CommandLine), nil

	// ===== SEARCH ENTRY =====

	case EnterSearchAction:
		c.CommandLine.SwitchToSearch()
		return true, nil
	case ExitSearchAction:
		c.CommandLine.SwitchToNormal()
		return true, nil
	case SearchInsertAction:
		if entry, ok := c.CommandLine.Search(); ok {
			entry.PushChar(a.Char)
			return true, nil
		}
	case SearchBackspaceAction:
		if entry, ok := c.CommandLine.Search(); ok {
			return entry.EraseChar(), nil
		}
	case SearchDeleteAction:
		if entry, ok := c.CommandLine.Search(); ok {
			return entry.DeleteChar(), nil
		}
	case SearchCursorLeftAction:
		if entry, ok := c.CommandLine.Search(); ok {
			return entry.CursorLeft(), nil
		}
	case SearchCursorRightAction:
		if entry, ok := c.CommandLine.Search(); ok {
			return entry.CursorRight(), nil
		}

	case nil, QuitAction, SuspendAction:
		return false, nil
	default:
		return false, fmt.Errorf("pager: unsupported action %T", action)
	}
	return false, nil
}
