package app

import (
	"github.com/islml/kaze/internal/ansi"
	kerrors "github.com/islml/kaze/internal/errors"
)

// Quit clears the screen, homes the cursor and returns ErrQuit.
// Each sequence is written separately.
func (e *Editor) Quit() error {
	e.logger.Info("quit")

	if err := e.write(ansi.ClearScreen); err != nil {
		return err
	}
	if err := e.write(ansi.CursorHome); err != nil {
		return err
	}
	return ErrQuit
}

// ClearScreen writes the clear-screen and cursor-home sequences. Used on
// the fatal path before the terminal is restored.
func (e *Editor) ClearScreen() error {
	if err := e.write(ansi.ClearScreen); err != nil {
		return err
	}
	return e.write(ansi.CursorHome)
}

// Close releases the watcher. The terminal is owned by the caller.
func (e *Editor) Close() error {
	if e.watcher == nil {
		return nil
	}
	err := e.watcher.Close()
	e.watcher = nil
	return err
}

func (e *Editor) write(s string) error {
	if _, err := e.term.Write([]byte(s)); err != nil {
		if kerrors.IsIO(err) {
			return err
		}
		return kerrors.NewIOError("write", err)
	}
	return nil
}
