// Package watcher reports changes made on disk to the open file.
//
// The watcher observes the file's parent directory, so it keeps
// reporting after editors that save by rename-and-replace, and forwards
// only events naming the file. Events are buffered on a channel that the
// editor loop drains without blocking between refreshes.
package watcher

import (
	"errors"
	"time"
)

// ErrPathNotExist is returned by New when the file does not exist.
var ErrPathNotExist = errors.New("path does not exist")

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	case OpChmod:
		return "CHMOD"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is the operation that occurred.
	Op Op

	// Timestamp is when the event was received.
	Timestamp time.Time
}

// Changed reports whether the file content may have changed.
func (e Event) Changed() bool {
	return e.Op.Has(OpWrite) || e.Op.Has(OpCreate)
}

// Removed reports whether the file is gone from its path.
func (e Event) Removed() bool {
	return e.Op.Has(OpRemove) || e.Op.Has(OpRename)
}
