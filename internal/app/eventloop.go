package app

import (
	"github.com/islml/kaze/internal/engine/cursor"
	"github.com/islml/kaze/internal/input/key"
	"github.com/islml/kaze/internal/watcher"
)

// arrowDirections maps arrow keys to cursor moves.
var arrowDirections = map[key.Key]cursor.Direction{
	key.KeyUp:    cursor.Up,
	key.KeyDown:  cursor.Down,
	key.KeyLeft:  cursor.Left,
	key.KeyRight: cursor.Right,
}

// HandleEvent applies one key event. It returns ErrQuit for the quit
// chord and nil for everything else; unbound keys are ignored.
func (e *Editor) HandleEvent(ev key.Event) error {
	if ev.IsCtrl(e.config.QuitKey) {
		return e.Quit()
	}

	if ev.Key.IsArrowKey() {
		e.cursor = e.cursor.Move(e.doc, arrowDirections[ev.Key])
		return nil
	}

	switch ev.Key {
	case key.KeyPageUp:
		e.cursor.Row = e.viewport.RowOffset()
		e.cursor = e.cursor.MoveN(e.doc, cursor.Up, e.viewport.Rows())

	case key.KeyPageDown:
		e.cursor.Row = min(e.viewport.RowOffset()+e.viewport.Rows()-1, e.doc.LineCount())
		e.cursor = e.cursor.MoveN(e.doc, cursor.Down, e.viewport.Rows())

	case key.KeyHome:
		e.cursor = e.cursor.Home()

	case key.KeyEnd:
		e.cursor = e.cursor.End(e.doc)

	default:
		e.logger.Debug("ignored key %v", ev)
	}

	return nil
}

// pollNotices drains signals and watcher events without blocking. It
// runs while the decoder waits for a key and returns errRedraw when the
// screen is out of date.
func (e *Editor) pollNotices() error {
	if e.signals != nil {
		select {
		case sig := <-e.signals:
			e.logger.Warn("received signal %v", sig)
			return &SignalError{Signal: sig}
		default:
		}
	}

	redraw := false
	if e.watcher != nil {
		for {
			ev, ok := e.watcher.Poll()
			if !ok {
				break
			}
			if e.handleFileEvent(ev) {
				redraw = true
			}
		}
		if err := e.watcher.PollError(); err != nil {
			e.watchLog.Warn("watcher error: %v", err)
		}
		if n := e.watcher.Dropped(); n > e.dropped {
			e.watchLog.Warn("dropped %d file events", n-e.dropped)
			e.dropped = n
		}
	}

	if e.messageShown && !e.message.Visible() {
		redraw = true
	}

	if redraw {
		return errRedraw
	}
	return nil
}

// handleFileEvent turns a watcher event into a message. It reports
// whether a message was set.
func (e *Editor) handleFileEvent(ev watcher.Event) bool {
	e.watchLog.Info("file event %v on %s", ev.Op, ev.Path)

	switch {
	case ev.Removed():
		e.SetMessage("file removed from disk")
	case ev.Changed():
		e.SetMessage("file changed on disk")
	default:
		return false
	}
	return true
}
