// Package pager holds the scroll engine and status-row state of the pager.
package pager

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kk-code-lab/kom/internal/buffer"
	"github.com/kk-code-lab/kom/internal/logger"
)

// ErrInvalidGeometry is returned for terminals too small to page in.
var ErrInvalidGeometry = errors.New("terminal must be at least 1 column wide and 2 rows tall")

var viewportLog = logger.Named("viewport")

// Viewport windows the buffer's wrapped rows. offset counts wrapped rows, not
// logical lines, so scrolling moves by the same amount however long the
// source lines are. The last terminal row is left for the status line.
type Viewport struct {
	buf    *buffer.Buffer
	width  int
	height int
	offset int
}

// NewViewport creates a viewport over buf for a width x height terminal.
func NewViewport(width, height int, buf *buffer.Buffer) (*Viewport, error) {
	if width < 1 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidGeometry, width, height)
	}
	return &Viewport{buf: buf, width: width, height: height}, nil
}

func (v *Viewport) Width() int  { return v.width }
func (v *Viewport) Height() int { return v.height }
func (v *Viewport) Offset() int { return v.offset }

// PageSize is the number of content rows, and the distance of a screen scroll.
func (v *Viewport) PageSize() int {
	return v.height - 1
}

// Fill reads lines until a full page of rows exists or the source ends.
func (v *Viewport) Fill() error {
	for v.buf.Len(v.width) < v.PageSize() {
		_, ok, err := v.buf.AppendLine()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return nil
}

// VisibleRows returns the rows currently on screen, at most PageSize of them.
func (v *Viewport) VisibleRows() []string {
	rows := make([]string, 0, v.PageSize())
	for row := range v.buf.WrappedLinesFrom(v.width, v.offset) {
		rows = append(rows, row)
		if len(rows) == v.PageSize() {
			break
		}
	}
	return slices.Clip(rows)
}

// ScrollDown moves the window n rows towards the end, reading ahead as
// needed. Once the source runs out the window is clamped so the last page is
// full and the End banner is shown. It reports whether the visible rows or
// the mode changed.
func (v *Viewport) ScrollDown(n int, cl *CommandLine) (bool, error) {
	prev := v.offset
	v.offset += max(n, 0)

	for v.buf.Len(v.width)-v.offset < v.PageSize() {
		_, ok, err := v.buf.AppendLine()
		if err != nil {
			return v.offset != prev, err
		}
		if ok {
			continue
		}

		v.offset = max(0, v.buf.Len(v.width)-v.PageSize())
		ended := cl.setEnd()
		if ended {
			viewportLog.WithField("rows", v.buf.Len(v.width)).Debug("reached end of source")
		}
		return v.offset != prev || ended, nil
	}

	collapsed := cl.collapseBanner()
	return v.offset != prev || collapsed, nil
}

// ScrollUp moves the window n rows towards the start, stopping at the top.
func (v *Viewport) ScrollUp(n int, cl *CommandLine) bool {
	prev := v.offset
	v.offset = max(0, v.offset-max(n, 0))
	collapsed := cl.collapseBanner()
	return v.offset != prev || collapsed
}

func (v *Viewport) ScrollDownLine(cl *CommandLine) (bool, error) {
	return v.ScrollDown(1, cl)
}

func (v *Viewport) ScrollUpLine(cl *CommandLine) bool {
	return v.ScrollUp(1, cl)
}

func (v *Viewport) ScrollDownScreen(cl *CommandLine) (bool, error) {
	return v.ScrollDown(v.PageSize(), cl)
}

func (v *Viewport) ScrollUpScreen(cl *CommandLine) bool {
	return v.ScrollUp(v.PageSize(), cl)
}
