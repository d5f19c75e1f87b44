//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// Package terminal owns the raw-mode terminal session.
//
// A Session captures the terminal attributes on Enter and puts the
// device into raw mode: no echo, no line buffering, no signal keys, no
// software flow control, 8-bit characters and a 100ms read timeout.
// Close restores the captured attributes. Callers pair Enter with a
// deferred Close so every exit path restores the terminal.
package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	kerrors "github.com/islml/kaze/internal/errors"
)

// Session is a terminal held in raw mode.
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	orig   unix.Termios
	raw    unix.Termios
	active bool
}

// Enter captures the attributes of in and switches it to raw mode.
// Output and window size queries go through out.
func Enter(in, out *os.File) (*Session, error) {
	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil, kerrors.NewTerminalError("tcgetattr", unix.ENOTTY)
	}

	orig, err := unix.IoctlGetTermios(inFd, ioctlGetTermios)
	if err != nil {
		return nil, kerrors.NewTerminalError("tcgetattr", err)
	}

	s := &Session{
		in:    in,
		out:   out,
		inFd:  inFd,
		outFd: int(out.Fd()),
		orig:  *orig,
		raw:   makeRaw(*orig),
	}

	if err := unix.IoctlSetTermios(inFd, ioctlSetTermiosFlush, &s.raw); err != nil {
		return nil, kerrors.NewTerminalError("tcsetattr", err)
	}
	s.active = true

	return s, nil
}

// makeRaw derives the raw-mode attributes from t.
func makeRaw(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cflag |= unix.CS8

	// Return from read after at most 100ms, even with no input.
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1

	return t
}

// Close restores the attributes captured by Enter. It is safe to call
// more than once.
func (s *Session) Close() error {
	if s == nil || !s.active {
		return nil
	}
	s.active = false

	if err := unix.IoctlSetTermios(s.inFd, ioctlSetTermiosFlush, &s.orig); err != nil {
		return kerrors.NewTerminalError("tcsetattr", err)
	}
	return nil
}

// Read reads raw input bytes. A read that times out without input
// returns (0, nil), as does an interrupted or would-block read.
func (s *Session) Read(p []byte) (int, error) {
	n, err := unix.Read(s.inFd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, nil
		}
		return 0, kerrors.NewIOError("read", err)
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// Write writes p to the terminal.
func (s *Session) Write(p []byte) (int, error) {
	n, err := s.out.Write(p)
	if err != nil {
		return n, kerrors.NewIOError("write", err)
	}
	return n, nil
}

// WindowSize returns the terminal geometry. It asks the kernel first and
// falls back to probing the terminal with a cursor position report.
func (s *Session) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(s.outFd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	rows, cols, err = QueryCursorPosition(s)
	if err != nil {
		return 0, 0, kerrors.NewTerminalError("getWindowSize", err)
	}
	return rows, cols, nil
}
