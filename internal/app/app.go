// Package app provides the editor session and its main loop. It wires
// the terminal, key decoder, document, cursor, viewport and renderer
// together and runs the refresh/read/handle cycle until quit.
package app

import (
	"errors"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/islml/kaze/internal/config"
	"github.com/islml/kaze/internal/engine/cursor"
	"github.com/islml/kaze/internal/engine/document"
	kerrors "github.com/islml/kaze/internal/errors"
	"github.com/islml/kaze/internal/input/key"
	"github.com/islml/kaze/internal/renderer"
	"github.com/islml/kaze/internal/renderer/statusline"
	"github.com/islml/kaze/internal/renderer/viewport"
	"github.com/islml/kaze/internal/watcher"
)

// Terminal is the port the editor reads keys from and writes frames to.
// A read that returns no bytes and no error means no key arrived before
// the read timeout.
type Terminal interface {
	io.Reader
	io.Writer
}

// Notifier delivers on-disk changes to the open file without blocking.
type Notifier interface {
	Poll() (watcher.Event, bool)
	PollError() error
	Dropped() int
	Close() error
}

// Options configures the editor.
type Options struct {
	// Rows and Cols are the terminal size in cells.
	Rows int
	Cols int

	// Config holds the settings. Defaults to config.Default().
	Config *config.Config

	// Logger receives log lines. Defaults to NullLogger.
	Logger *Logger

	// Watcher reports changes to the open file. Optional.
	Watcher Notifier

	// Signals delivers termination signals. Optional.
	Signals <-chan os.Signal

	// Clock drives message expiry. Defaults to time.Now.
	Clock func() time.Time

	// SessionID tags log lines. Defaults to a random UUID.
	SessionID string
}

// Editor is the state of one viewing session.
type Editor struct {
	term    Terminal
	decoder *key.Decoder
	doc     *document.Document
	cursor  cursor.Cursor

	viewport *viewport.Viewport
	status   *statusline.StatusBar
	message  *statusline.MessageBar
	renderer *renderer.Renderer

	config   *config.Config
	logger   *Logger
	watcher  Notifier
	watchLog *Logger
	dropped  int
	signals  <-chan os.Signal

	// messageShown records whether the last frame drew the message.
	messageShown bool

	running atomic.Bool
}

// New creates an editor showing doc on term.
func New(term Terminal, doc *document.Document, opts Options) *Editor {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	session := opts.SessionID
	if session == "" {
		session = uuid.NewString()
	}

	vp := viewport.ForTerminal(opts.Rows, opts.Cols)
	status := statusline.New()
	message := statusline.NewMessageBar(cfg.MessageTimeout, statusline.WithClock(clock))

	e := &Editor{
		term:     term,
		decoder:  key.NewDecoder(term),
		doc:      doc,
		viewport: vp,
		status:   status,
		message:  message,
		renderer: renderer.New(vp, status, message),
		config:   cfg,
		logger:   logger.WithField("session", session),
		watcher:  opts.Watcher,
		signals:  opts.Signals,
	}
	e.watchLog = e.logger.WithComponent("watcher")
	e.decoder.SetIdleFunc(e.pollNotices)

	e.SetMessage("HELP: %s = quit", cfg.QuitKeyName())
	return e
}

// Run refreshes the screen and handles keys until the quit key is
// pressed, a signal arrives, or an error occurs. A normal quit returns
// ErrQuit. A panic inside the loop is returned as RecoveredPanicError.
func (e *Editor) Run() (err error) {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()

	e.logger.WithFields(map[string]any{
		"file":  e.doc.Name(),
		"lines": e.doc.LineCount(),
		"rows":  e.viewport.Rows(),
		"cols":  e.viewport.Cols(),
	}).Info("session started")

	for {
		if err := e.Refresh(); err != nil {
			return err
		}

		err := e.pollNotices()
		if err == nil {
			err = e.handleKeys()
		}
		if !errors.Is(err, errRedraw) {
			return err
		}
	}
}

// handleKeys handles decoded keys, refreshing after each one, until a
// handler or the decoder returns an error. errRedraw means a notice
// arrived while idle.
func (e *Editor) handleKeys() error {
	for ev, err := range e.decoder.Events() {
		if err != nil {
			return err
		}
		if err := e.HandleEvent(ev); err != nil {
			return err
		}
		if err := e.Refresh(); err != nil {
			return err
		}
		if err := e.pollNotices(); err != nil {
			return err
		}
	}
	return nil
}

// Refresh scrolls the viewport to the cursor, composes a frame and
// writes it to the terminal in one call.
func (e *Editor) Refresh() error {
	rx := e.doc.RenderColumn(e.cursor.Row, e.cursor.Col)
	e.viewport.Scroll(e.cursor.Row, rx)

	frame := e.renderer.Compose(e.doc, e.cursor.Row, rx)
	e.messageShown = frame.MessageShown()

	if _, err := frame.WriteTo(e.term); err != nil {
		if kerrors.IsIO(err) {
			return err
		}
		return kerrors.NewIOError("write", err)
	}
	return nil
}

// SetMessage shows a formatted message in the message bar.
func (e *Editor) SetMessage(format string, args ...any) {
	e.message.Set(format, args...)
	e.logger.Debug("message: %s", e.message.Text())
}
