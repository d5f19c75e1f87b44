// Package errors defines the error taxonomy shared by the kaze packages.
//
// Three kinds exist and all of them are fatal to an editing session:
//
//   - TerminalError: terminal attribute get/set and window size failures
//   - IOError: read/write failures on the terminal device
//   - FileError: failures opening or reading the requested document
//
// Each kind matches its sentinel with errors.Is, so callers can classify
// a wrapped error without a type switch.
package errors

import (
	"errors"
	"io/fs"
)

// Sentinel errors for each kind.
var (
	ErrTerminal = errors.New("terminal error")
	ErrIO       = errors.New("i/o error")
	ErrFile     = errors.New("file error")
)

// TerminalError reports a failed terminal attribute or geometry operation.
type TerminalError struct {
	Op  string // e.g. "tcgetattr", "tcsetattr", "getWindowSize"
	Err error
}

// NewTerminalError creates a TerminalError.
func NewTerminalError(op string, err error) *TerminalError {
	return &TerminalError{Op: op, Err: err}
}

func (e *TerminalError) Error() string {
	return format(e.Op, "", e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

// Is matches ErrTerminal.
func (e *TerminalError) Is(target error) bool { return target == ErrTerminal }

// IOError reports a failed read or write on the terminal device.
type IOError struct {
	Op  string // "read" or "write"
	Err error
}

// NewIOError creates an IOError.
func NewIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

func (e *IOError) Error() string {
	return format(e.Op, "", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is matches ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// FileError reports a failure opening or reading a document.
type FileError struct {
	Op   string
	Path string
	Err  error
}

// NewFileError creates a FileError. A *fs.PathError is unwrapped so the
// operation and path are not repeated in the message.
func NewFileError(op, path string, err error) *FileError {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &FileError{Op: op, Path: path, Err: err}
}

func (e *FileError) Error() string {
	return format(e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is matches ErrFile.
func (e *FileError) Is(target error) bool { return target == ErrFile }

// IsTerminal reports whether err is a TerminalError.
func IsTerminal(err error) bool { return errors.Is(err, ErrTerminal) }

// IsIO reports whether err is an IOError.
func IsIO(err error) bool { return errors.Is(err, ErrIO) }

// IsFile reports whether err is a FileError.
func IsFile(err error) bool { return errors.Is(err, ErrFile) }

// IsFatal reports whether err belongs to any of the three kinds.
func IsFatal(err error) bool {
	return IsTerminal(err) || IsIO(err) || IsFile(err)
}

func format(op, path string, err error) string {
	msg := op
	if path != "" {
		msg += " " + path
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	return msg
}
